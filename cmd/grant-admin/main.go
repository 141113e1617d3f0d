// grant-admin flips the admin capability flag for a user directly in
// the database. Useful for bootstrapping the first admin, since the
// /admin/set-admin endpoint needs an authenticated caller.
//
// Usage: grant-admin <email>
package main

import (
	"log"
	"os"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
	"github.com/schilling3003/shelflife-sales-app/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: grant-admin <email>")
	}
	email := os.Args[1]

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find the user
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", email, err)
	}

	// 4. Grant the flag
	if err := db.Model(&user).Update("is_admin", true).Error; err != nil {
		log.Fatalf("Failed to update user in DB: %v", err)
	}

	log.Printf("Success! %s now has the admin capability", email)
}
