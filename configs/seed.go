package configs

import (
	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		logrus.Info("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		logrus.WithField("email", email).Info("admin already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedCategories inserts the default meal categories.
func SeedCategories() error {
	for _, name := range []string{"Breakfast", "Lunch", "Dinner", "Snacks", "Desserts"} {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
