package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"marketplace-backend/internal/cache"
	"marketplace-backend/internal/config"
	"marketplace-backend/internal/db"
	appmw "marketplace-backend/internal/middleware"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/notify"
	"marketplace-backend/internal/server"
	"marketplace-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	identity, err := appmw.NewIdentityMiddleware(ctx, os.Getenv("FIREBASE_PROJECT_ID"))
	if err != nil {
		log.Fatalf("identity init error: %v", err)
	}

	var uploader *storage.Uploader
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		uploader, err = storage.NewUploader(ctx, bucket)
		if err != nil {
			log.Printf("storage init error, uploads disabled: %v", err)
			uploader = nil
		}
	}

	deps := server.Deps{
		Identity: identity,
		Uploader: uploader,
		Cache:    cache.New(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD")),
	}
	if endpoint := os.Getenv("NOTIFY_ENDPOINT"); endpoint != "" {
		deps.Notifier = notify.NewClient(endpoint)
	}
	srv := server.New(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	errCh := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	// Connect the store in the background; until it is up (or if it never
	// comes up) read paths serve the sample fallback.
	go func() {
		cfg, err := config.Load()
		if err != nil {
			log.Printf("config load error: %v", err)
			return
		}
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Printf("db connect error: %v", err)
			return
		}
		if err := conn.AutoMigrate(&model.Listing{}, &model.Message{}); err != nil {
			log.Printf("auto migrate error: %v", err)
		}
		srv.SetDB(conn)
		log.Printf("listing store connected")
	}()

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
