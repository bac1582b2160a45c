package seed

import (
	"server/config"
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/gorm"
)

// Seed puts the first operator on the allowlist so someone can reach the
// dashboard on a fresh install. Skipped when the table already has rows or
// no seed email is configured.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")

	if config.SeedAdminEmail == "" {
		log.Info("No seed admin email configured, skipping")
		return nil
	}

	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return log.Err("failed to count users", err)
	}

	if count > 0 {
		log.Info("Users table already populated, skipping seed", "count", count)
		return nil
	}

	admin := NewInvitee(config.SeedAdminEmail)
	admin.Role = "Admin"

	log.Info("Seeding admin user", "email", admin.Email)
	if err := db.Create(admin).Error; err != nil {
		return log.Err("failed to create admin user", err, "email", admin.Email)
	}

	return nil
}
