package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dkotelnikov/shop-backend/internal/config"
	"github.com/dkotelnikov/shop-backend/internal/httpserver"
	"github.com/dkotelnikov/shop-backend/internal/logging"
	"github.com/dkotelnikov/shop-backend/internal/middleware/loggingmw"
	"github.com/dkotelnikov/shop-backend/internal/mykafka"
	"github.com/dkotelnikov/shop-backend/internal/repo"
	"github.com/dkotelnikov/shop-backend/internal/service"
	"github.com/dkotelnikov/shop-backend/internal/storage"
	"github.com/dkotelnikov/shop-backend/internal/validation"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	var brokers []string
	if configuration.KAFKA_ADDRESS != "" {
		brokers = []string{configuration.KAFKA_ADDRESS}
	}
	prod := mykafka.NewProducer(brokers)

	r := repo.New(db)

	store, err := selectFileStore(configuration, r)
	if err != nil {
		log.Fatalf("upload store init failed: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: r}, Producer: prod},
		AuthHandler:    &httpserver.AuthHTTP{Svc: &service.AccountService{Repo: r}, JWTSecret: jwtSecret, Producer: prod},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}, Producer: prod},
		UploadHandler:  &httpserver.UploadHTTP{Store: store},
		JWTSecret:      jwtSecret,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}

func selectFileStore(configuration *config.Config, r *repo.GormRepo) (storage.FileStore, error) {
	switch configuration.UPLOAD_BACKEND {
	case "disk":
		return &storage.DiskStore{Dir: configuration.UPLOAD_DIR, BaseURL: configuration.PUBLIC_URL}, nil
	case "db":
		return &storage.BlobStore{Repo: r, BaseURL: configuration.PUBLIC_URL}, nil
	case "s3":
		config.MustNonEmpty(configuration.S3_BUCKET, "S3_BUCKET")
		config.MustNonEmpty(configuration.S3_REGION, "S3_REGION")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewS3Store(ctx, configuration.S3_BUCKET, configuration.S3_REGION)
	default:
		return nil, errors.New("unknown UPLOAD_BACKEND: " + configuration.UPLOAD_BACKEND)
	}
}
