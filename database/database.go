package database

import (
	"log"
	"os"

	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
	"github.com/mishaszu/imagery-storage/internal/domain/albums"
	"github.com/mishaszu/imagery-storage/internal/domain/media"
	"github.com/mishaszu/imagery-storage/internal/domain/posts"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// needed for gen_random_uuid() defaults
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// identity
		&accounts.Account{},
		&accounts.User{},
		&accounts.Referral{},

		// content
		&posts.Post{},
		&posts.PostImage{},
		&albums.Album{},
		&albums.AlbumPost{},
		&media.Image{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
}
