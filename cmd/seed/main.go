// Seeds the listing store with the sample fixture for local development.
// Existing rows with the same titles are left alone, so reruns are safe.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"marketplace-backend/internal/config"
	"marketplace-backend/internal/db"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/sample"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatalf("failed to get sql db: %v", err)
	}
	defer sqlDB.Close()

	if err := conn.AutoMigrate(&model.Listing{}, &model.Message{}); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeded := 0
	for _, l := range sample.NewProvider().Listings() {
		var existing model.Listing
		err := conn.WithContext(ctx).Where("title = ?", l.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("lookup failed for %q: %v", l.Title, err)
		}
		l.ID = uuid.NewString()
		if err := conn.WithContext(ctx).Create(&l).Error; err != nil {
			log.Fatalf("insert failed for %q: %v", l.Title, err)
		}
		seeded++
	}
	log.Printf("seed complete: %d listings inserted", seeded)
}
