package database

import (
	"fmt"
	"strconv"

	"travel_agency/config"
	"travel_agency/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates the schema. The caller
// decides what to do when this fails; the process must be able to keep
// serving fallback content without a database.
func Connect() (*gorm.DB, error) {
	port, err := strconv.ParseUint(config.ConfigOr("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"),
		config.ConfigOr("DB_SSLMODE", "disable"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.SiteSettings{},
		&model.Tour{},
		&model.Post{},
		&model.Review{},
		&model.Enquiry{},
		&model.Booking{},
		&model.AdminUser{},
		&model.Account{},
		&model.PasswordResetToken{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	SeedData(db)
	return db, nil
}
