package constants

// Admin roles, closed set. Management follows a strict partial order:
// programmer_admin > admin > {seo, sales}. Only programmer_admin may touch
// another programmer_admin (including promotion to the role).
type AdminRole string

const (
	RoleProgrammerAdmin AdminRole = "programmer_admin"
	RoleAdmin           AdminRole = "admin"
	RoleSEO             AdminRole = "seo"
	RoleSales           AdminRole = "sales"
)

var RoleLabels = map[AdminRole]string{
	RoleProgrammerAdmin: "Programmer(Admin)",
	RoleAdmin:           "Admin",
	RoleSEO:             "SEO",
	RoleSales:           "Sales",
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []AdminRole{
		RoleProgrammerAdmin,
		RoleAdmin,
		RoleSEO,
		RoleSales,
	}

	AdminAndAbove = []AdminRole{
		RoleProgrammerAdmin,
		RoleAdmin,
	}

	ProgrammerAdminOnly = []AdminRole{
		RoleProgrammerAdmin,
	}
)

func (r AdminRole) Valid() bool {
	_, ok := RoleLabels[r]
	return ok
}

func (r AdminRole) Label() string {
	if l, ok := RoleLabels[r]; ok {
		return l
	}
	return "Unknown"
}

// Rank returns the management tier; higher manages lower.
func (r AdminRole) Rank() int {
	switch r {
	case RoleProgrammerAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleSEO, RoleSales:
		return 1
	default:
		return 0
	}
}

// CanManage reports whether an actor with role r may modify a target with
// role target. programmer_admin manages everyone, itself included; everyone
// else manages strictly below their own tier and never a programmer_admin.
func (r AdminRole) CanManage(target AdminRole) bool {
	if target == RoleProgrammerAdmin {
		return r == RoleProgrammerAdmin
	}
	if r == RoleProgrammerAdmin {
		return true
	}
	return r.Rank() > target.Rank()
}

// CanAssign reports whether an actor with role r may set a target's role to
// newRole. Promotion to programmer_admin is reserved to programmer_admin.
func (r AdminRole) CanAssign(newRole AdminRole) bool {
	if newRole == RoleProgrammerAdmin {
		return r == RoleProgrammerAdmin
	}
	return r == RoleProgrammerAdmin || r.Rank() > newRole.Rank()
}
