package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gradus_backend/internals/configs"
	"gradus_backend/internals/constants"
	adminModel "gradus_backend/internals/features/admins/model"
)

// SeedRootAdmin makes sure one programmer_admin exists so a fresh
// deployment can be administered. Credentials come from the environment;
// nothing is seeded when they are absent.
func SeedRootAdmin(db *gorm.DB) {
	email := configs.GetEnv("SEED_ADMIN_EMAIL")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ℹ️ SEED_ADMIN_EMAIL/PASSWORD not set, skipping root admin seed")
		return
	}

	var existing adminModel.AdminUserModel
	if err := db.Where("LOWER(admin_user_email) = LOWER(?)", email).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Root admin '%s' already exists, skipped", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash root admin password: %v", err)
		return
	}

	admin := adminModel.AdminUserModel{
		AdminUserName:     configs.GetEnv("SEED_ADMIN_NAME", "Root Admin"),
		AdminUserEmail:    email,
		AdminUserPassword: string(hash),
		AdminUserRole:     string(constants.RoleProgrammerAdmin),
		AdminUserStatus:   adminModel.StatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed root admin: %v", err)
		return
	}
	log.Printf("✅ Seeded root admin '%s'", email)
}
