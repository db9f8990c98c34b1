package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "medrent-backend/internal/api/http"
	"medrent-backend/internal/config"
	"medrent-backend/internal/logger"
	"medrent-backend/internal/repository/postgres"
	"medrent-backend/internal/security"
	"medrent-backend/internal/service"
	"medrent-backend/internal/storage"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting MedRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	var storageService storage.StorageInterface
	switch cfg.Storage.Type {
	case "", "local":
		logger.Info("Using local filesystem storage", "upload_dir", cfg.Storage.UploadDir)
		localStorage, err := storage.NewLocalStorageService(cfg.Server.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		storageService = localStorage
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	authSvc := service.NewAuthService(store.UserRepository, store.ProfileRepository, emailSvc, tokenManager)
	profileSvc := service.NewProfileService(store.ProfileRepository, store.UserRepository)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.CategoryRepository, store.ProfileRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.EquipmentRepository,
		store.UserRepository,
		profileSvc,
		emailSvc,
		store.NotificationRepository,
	)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	dashboardSvc := service.NewDashboardService(store.EquipmentRepository, store.RentalRepository)
	mapSvc := service.NewMapService(store.EquipmentRepository, store.RentalRepository)
	imageSvc := service.NewImageStorageService(store.EquipmentRepository, storageService)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		Profile:      profileSvc,
		Equipment:    equipmentSvc,
		Rental:       rentalSvc,
		Notification: notificationSvc,
		Dashboard:    dashboardSvc,
		Map:          mapSvc,
		Image:        imageSvc,
		Storage:      storageService,
		TokenManager: tokenManager,
	})

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
