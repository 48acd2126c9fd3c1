package main

import (
	"log"

	"bukukas/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB(cfg *Config) {
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	if cfg.AutoMigrate {
		autoMigrate()
	}
	seedDB()
}

// autoMigrate migrates models individually so a failure on one doesn't block others.
func autoMigrate() {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Printf("migration warning (users): %v", err)
	}
	if err := db.AutoMigrate(&models.AuthToken{}); err != nil {
		log.Printf("migration warning (auth_tokens): %v", err)
	}
	if err := db.AutoMigrate(&models.TransactionGroup{}); err != nil {
		log.Printf("migration warning (transaction_groups): %v", err)
	}
	if err := db.AutoMigrate(&models.EmployeePayment{}); err != nil {
		log.Printf("migration warning (employee_payments): %v", err)
	}
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		log.Printf("migration warning (transactions): %v", err)
	}
}

// seedDB ensures at least one admin account exists. Registration is not
// exposed over the API; users are created here or via cmd/create_user.
func seedDB() {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := models.User{
		Name:           "Administrator",
		Email:          "admin@example.com",
		HashedPassword: hashedPassword,
		Role:           models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
		return
	}
	log.Println("Seeded admin user: email=admin@example.com, password=admin123")
}
