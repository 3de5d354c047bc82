package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/avbelov/torgi-notice-service/internal/db"
	"github.com/avbelov/torgi-notice-service/internal/filestore"
	"github.com/avbelov/torgi-notice-service/internal/handlers"
	"github.com/avbelov/torgi-notice-service/internal/models"
	"github.com/avbelov/torgi-notice-service/internal/repository"
	"github.com/avbelov/torgi-notice-service/internal/router"
	"github.com/avbelov/torgi-notice-service/internal/router/config"
	"github.com/avbelov/torgi-notice-service/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer dbPool.Close()

	logger := log.New(os.Stdout, "INFO: ", log.LstdFlags)

	notificationRepo := repository.NewPostgresNotificationRepository(dbPool)

	resolver := filestore.NewResolver(nil, filestore.Config{
		BaseURL:       cfg.FilestoreURL,
		MaxStemLength: cfg.AttachmentStemMax,
	})
	links := models.LinkBuilder{
		NoticeURL: cfg.NoticeLinkURL,
		LotURL:    cfg.LotLinkURL,
	}

	notificationService := services.NewNotificationService(notificationRepo, resolver, links, cfg.AttachmentDir)

	notificationHandler := handlers.NewNotificationHandler(notificationService, logger, 5*time.Second)
	attachmentHandler := handlers.NewAttachmentHandler(notificationService, logger, 60*time.Second)

	routes := router.InitRoutes(notificationHandler, attachmentHandler)

	log.Printf("server is listening on %s...", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
