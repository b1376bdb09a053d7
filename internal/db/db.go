package db

import (
	"log"

	"errorswag/internal/config"
	"errorswag/internal/models"
	"errorswag/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the database, runs migrations and seeds the superadmin account.
func Init(cfg *config.Config) *gorm.DB {
	database, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	err = database.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Bookmark{},
		&models.Follower{},
		&models.Rating{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedSuperAdmin(database, cfg)

	return database
}

// seedSuperAdmin creates the configured superadmin once. Role changes are
// superadmin-gated, so without a seed nobody could ever grant the role.
func seedSuperAdmin(database *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	database.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&count)
	if count > 0 {
		return
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Printf("Failed to hash superadmin password: %v", err)
		return
	}

	admin := models.User{
		Username: "superadmin",
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     models.RoleSuperAdmin,
		Status:   models.StatusActive,
	}
	if err := database.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed superadmin %s: %v", cfg.AdminEmail, err)
		return
	}
	log.Println("Superadmin account seeded")
}
