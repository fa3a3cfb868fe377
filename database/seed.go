package database

import (
	"log"

	"travel_agency/config"
	"travel_agency/constants"
	"travel_agency/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData guarantees the singleton settings row exists and bootstraps the
// first admin account from ADMIN_EMAIL / ADMIN_PASSWORD. The settings row is
// never created anywhere else; the admin settings form only updates it.
func SeedData(db *gorm.DB) {
	settings := model.DefaultSiteSettings()
	if err := db.Where("id = ?", constants.SiteSettingsID).FirstOrCreate(&settings).Error; err != nil {
		log.Println("failed to seed site settings:", err)
	}

	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash bootstrap admin password:", err)
		return
	}

	account := model.Account{Email: adminEmail, Password: string(bytes)}
	if err := db.Where(model.Account{Email: adminEmail}).FirstOrCreate(&account).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}

	adminUser := model.AdminUser{Email: adminEmail}
	if err := db.Where(model.AdminUser{Email: adminEmail}).FirstOrCreate(&adminUser).Error; err != nil {
		log.Println("failed to seed admin allow-list entry:", err)
	}
}
