package repository

import (
	"context"
	"time"

	"medrent-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	IncrementViews(ctx context.Context, id int64) error
	ListBySeller(ctx context.Context, sellerID string, page, pageSize int32) ([]domain.Equipment, int64, error)
	Search(ctx context.Context, filter domain.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int64, error)
	ListAvailableWithLocation(ctx context.Context) ([]domain.Equipment, error)
	CountBySeller(ctx context.Context, sellerID string) (int64, error)

	// Image management (pending + confirmed)
	CreateImage(ctx context.Context, image *domain.EquipmentImage) error
	GetImageByID(ctx context.Context, imageID int64) (*domain.EquipmentImage, error)
	GetImages(ctx context.Context, equipmentID int64) ([]domain.EquipmentImage, error)
	ConfirmImage(ctx context.Context, imageID, equipmentID int64, fileSize int64) error
	DeleteImage(ctx context.Context, imageID int64) error
	DeleteExpiredPendingImages(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	// UpdateStatus persists a status change. When available is non-nil the
	// linked equipment's availability flag is flipped in the same database
	// transaction, so the two writes cannot be observed apart.
	UpdateStatus(ctx context.Context, rental *domain.Rental, available *bool) error
	ListByBuyer(ctx context.Context, buyerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error)
	ListBySeller(ctx context.Context, sellerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error)
	ListActiveForParty(ctx context.Context, partyID string) ([]domain.Rental, error)
	ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
	CountBySellerAndStatus(ctx context.Context, sellerID string, status domain.RentalStatus) (int64, error)
	CountByBuyerAndStatus(ctx context.Context, buyerID string, status domain.RentalStatus) (int64, error)
	CompletedRevenueForSeller(ctx context.Context, sellerID string) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, id int64, userID string) error
}
