package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"bukukas/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: go run ./cmd/create_user <name> <email> <password> [role]")
		os.Exit(2)
	}
	name := os.Args[1]
	email := os.Args[2]
	password := os.Args[3]
	role := models.RoleUser
	if len(os.Args) > 4 {
		role = models.Role(os.Args[4])
		if !role.Valid() {
			log.Fatalf("unknown role %q (want user, finance or admin)", os.Args[4])
		}
	}

	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	// check existing
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (id=%d)\n", email, existing.ID)
		os.Exit(0)
	}

	hpw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	user := models.User{Name: name, Email: email, HashedPassword: hpw, Role: role}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created %s user %s id=%d\n", role, email, user.ID)
}
