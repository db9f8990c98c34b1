package http

import (
	"net/http"

	"medrent-backend/internal/security"
	"medrent-backend/internal/service"
	"medrent-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Auth         service.AuthService
	Profile      service.ProfileService
	Equipment    service.EquipmentService
	Rental       service.RentalService
	Notification service.NotificationService
	Dashboard    service.DashboardService
	Map          service.MapService
	Image        service.ImageStorageService
	Storage      storage.StorageInterface
	TokenManager security.TokenManager
}

// NewRouter wires all API routes under /api/v1.
func NewRouter(svcs Services) *mux.Router {
	validate := validator.New()

	authHandler := NewAuthHandler(svcs.Auth, validate)
	profileHandler := NewProfileHandler(svcs.Profile, validate)
	equipmentHandler := NewEquipmentHandler(svcs.Equipment, validate)
	rentalHandler := NewRentalHandler(svcs.Rental, validate)
	notificationHandler := NewNotificationHandler(svcs.Notification)
	dashboardHandler := NewDashboardHandler(svcs.Dashboard, svcs.Map)
	imageHandler := NewImageHandler(svcs.Image, validate)
	storageHandler := NewStorageHandler(svcs.Storage)

	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	api := root.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/categories", equipmentHandler.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/equipment", equipmentHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}/images", imageHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/images/{imageID:[0-9]+}/url", imageHandler.DownloadURL).Methods(http.MethodGet)

	// Presigned-style storage endpoints used by the local backend
	api.HandleFunc("/storage/upload", storageHandler.Upload).Methods(http.MethodPut)
	api.HandleFunc("/storage/download", storageHandler.Download).Methods(http.MethodGet)

	// Authenticated routes
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(svcs.TokenManager))

	auth.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	auth.HandleFunc("/profile", profileHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/profile", profileHandler.Update).Methods(http.MethodPut)

	auth.HandleFunc("/equipment", equipmentHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Update).Methods(http.MethodPut)
	auth.HandleFunc("/equipment/{id:[0-9]+}/availability", equipmentHandler.SetAvailability).Methods(http.MethodPatch)
	auth.HandleFunc("/my/equipment", equipmentHandler.ListMine).Methods(http.MethodGet)

	auth.HandleFunc("/equipment/{id:[0-9]+}/images/upload-url", imageHandler.RequestUploadURL).Methods(http.MethodPost)
	auth.HandleFunc("/equipment/{id:[0-9]+}/images/{imageID:[0-9]+}/confirm", imageHandler.Confirm).Methods(http.MethodPost)
	auth.HandleFunc("/images/{imageID:[0-9]+}", imageHandler.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/rentals", rentalHandler.ListRentals).Methods(http.MethodGet)
	auth.HandleFunc("/lendings", rentalHandler.ListLendings).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}/approve", rentalHandler.Approve).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/reject", rentalHandler.Reject).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/deliver", rentalHandler.MarkDelivered).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/complete", rentalHandler.Complete).Methods(http.MethodPost)

	auth.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	auth.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods(http.MethodGet)
	auth.HandleFunc("/map/markers", dashboardHandler.MapMarkers).Methods(http.MethodGet)

	return root
}
