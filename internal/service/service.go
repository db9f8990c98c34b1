package service

import (
	"context"

	"medrent-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, fullName, hospitalName string, role domain.ProfileRole) (*domain.Profile, string, string, error) // profile, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile *domain.Profile) error
	// EnsureProfile returns the user's profile, provisioning a minimal one
	// (role "both", name derived from the account email) when none exists.
	EnsureProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, []domain.EquipmentImage, error)
	UpdateEquipment(ctx context.Context, sellerID string, eq *domain.Equipment) error
	SetAvailability(ctx context.Context, sellerID string, id int64, available bool) error
	SearchEquipment(ctx context.Context, filter domain.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int64, error)
	ListMyEquipment(ctx context.Context, sellerID string, page, pageSize int32) ([]domain.Equipment, int64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// RentalRequest is the candidate a buyer submits. Validation happens in
// CreateRentalRequest before any record is written.
type RentalRequest struct {
	EquipmentID       int64
	StartDate         string // yyyy-mm-dd
	EndDate           string // yyyy-mm-dd
	DeliveryAddress   string
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	Notes             string
}

type RentalService interface {
	CreateRentalRequest(ctx context.Context, buyerID string, req RentalRequest) (*domain.Rental, error)
	ApproveRentalRequest(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error)
	RejectRentalRequest(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error)
	CancelRental(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error)
	MarkDelivered(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error)
	CompleteRental(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error)
	ListRentals(ctx context.Context, buyerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error)
	ListLendings(ctx context.Context, sellerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error)
	GetRental(ctx context.Context, userID string, rentalID int64) (*domain.Rental, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, userID string, notificationID int64) error
}

type DashboardService interface {
	GetStats(ctx context.Context, userID string) (*domain.DashboardStats, error)
}

type MapService interface {
	GetMarkers(ctx context.Context, userID string) ([]domain.MapMarker, error)
}

type ImageStorageService interface {
	GetUploadURL(ctx context.Context, userID string, equipmentID int64, fileName, contentType string) (*domain.EquipmentImage, string, error)
	ConfirmImageUpload(ctx context.Context, userID string, imageID, equipmentID int64) (*domain.EquipmentImage, error)
	GetDownloadURL(ctx context.Context, imageID int64) (string, error)
	GetEquipmentImages(ctx context.Context, equipmentID int64) ([]domain.EquipmentImage, error)
	DeleteImage(ctx context.Context, userID string, imageID int64) error
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error

	// Rental lifecycle notifications
	SendRentalRequestNotification(ctx context.Context, sellerEmail, buyerName, equipmentName string) error
	SendRentalApprovalNotification(ctx context.Context, buyerEmail, equipmentName, sellerName string) error
	SendRentalRejectionNotification(ctx context.Context, buyerEmail, equipmentName, sellerName string) error
	SendRentalCancellationNotification(ctx context.Context, sellerEmail, buyerName, equipmentName string) error
	SendRentalDeliveryNotification(ctx context.Context, buyerEmail, equipmentName string) error
	SendRentalCompletionNotification(ctx context.Context, email, equipmentName string, amountCents int64) error
	SendRentalEndingReminder(ctx context.Context, email, equipmentName, endDate string) error
	SendPendingRequestDigest(ctx context.Context, email string, count int64) error
}
