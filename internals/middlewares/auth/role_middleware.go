package auth

import (
	"github.com/gofiber/fiber/v2"

	"gradus_backend/internals/constants"
)

// RequireRoles gates a route group to the given admin roles. Must run
// after AdminAuth.
func RequireRoles(roles ...constants.AdminRole) fiber.Handler {
	allowed := make(map[constants.AdminRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := AdminRoleFromCtx(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		return c.Next()
	}
}
