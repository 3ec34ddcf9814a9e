package configs

import (
	"log"

	"github.com/YibestBelay/shegaCafe/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedMenu drops a few starter items into an empty menu.
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Doro Wat", Description: "Spicy chicken stew with injera", Price: 180, Category: entity.CategoryFood, IsAvailable: true},
		{Name: "Shiro", Description: "Ground chickpea stew", Price: 120, Category: entity.CategoryFood, IsAvailable: true},
		{Name: "Macchiato", Description: "Espresso with steamed milk", Price: 40, Category: entity.CategoryDrink, IsAvailable: true},
		{Name: "Baklava", Description: "Layered honey pastry", Price: 65, Category: entity.CategoryDessert, IsAvailable: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Println("menu seeded")
	return nil
}
