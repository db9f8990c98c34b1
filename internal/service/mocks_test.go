package service

import (
	"context"
	"time"

	"medrent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockEquipmentRepo) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) ListBySeller(ctx context.Context, sellerID string, page, pageSize int32) ([]domain.Equipment, int64, error) {
	args := m.Called(ctx, sellerID, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int64), args.Error(2)
}
func (m *MockEquipmentRepo) Search(ctx context.Context, filter domain.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int64), args.Error(2)
}
func (m *MockEquipmentRepo) ListAvailableWithLocation(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockEquipmentRepo) CreateImage(ctx context.Context, image *domain.EquipmentImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetImageByID(ctx context.Context, imageID int64) (*domain.EquipmentImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentImage), args.Error(1)
}
func (m *MockEquipmentRepo) GetImages(ctx context.Context, equipmentID int64) ([]domain.EquipmentImage, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.EquipmentImage), args.Error(1)
}
func (m *MockEquipmentRepo) ConfirmImage(ctx context.Context, imageID, equipmentID int64, fileSize int64) error {
	args := m.Called(ctx, imageID, equipmentID, fileSize)
	return args.Error(0)
}
func (m *MockEquipmentRepo) DeleteImage(ctx context.Context, imageID int64) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}
func (m *MockEquipmentRepo) DeleteExpiredPendingImages(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, rental *domain.Rental, available *bool) error {
	args := m.Called(ctx, rental, available)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByBuyer(ctx context.Context, buyerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error) {
	args := m.Called(ctx, buyerID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int64), args.Error(2)
}
func (m *MockRentalRepo) ListBySeller(ctx context.Context, sellerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error) {
	args := m.Called(ctx, sellerID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int64), args.Error(2)
}
func (m *MockRentalRepo) ListActiveForParty(ctx context.Context, partyID string) ([]domain.Rental, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CountBySellerAndStatus(ctx context.Context, sellerID string, status domain.RentalStatus) (int64, error) {
	args := m.Called(ctx, sellerID, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) CountByBuyerAndStatus(ctx context.Context, buyerID string, status domain.RentalStatus) (int64, error) {
	args := m.Called(ctx, buyerID, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) CompletedRevenueForSeller(ctx context.Context, sellerID string) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int64, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileService) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileService) EnsureProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalRequestNotification(ctx context.Context, sellerEmail, buyerName, equipmentName string) error {
	args := m.Called(ctx, sellerEmail, buyerName, equipmentName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalApprovalNotification(ctx context.Context, buyerEmail, equipmentName, sellerName string) error {
	args := m.Called(ctx, buyerEmail, equipmentName, sellerName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalRejectionNotification(ctx context.Context, buyerEmail, equipmentName, sellerName string) error {
	args := m.Called(ctx, buyerEmail, equipmentName, sellerName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCancellationNotification(ctx context.Context, sellerEmail, buyerName, equipmentName string) error {
	args := m.Called(ctx, sellerEmail, buyerName, equipmentName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalDeliveryNotification(ctx context.Context, buyerEmail, equipmentName string) error {
	args := m.Called(ctx, buyerEmail, equipmentName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCompletionNotification(ctx context.Context, email, equipmentName string, amountCents int64) error {
	args := m.Called(ctx, email, equipmentName, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalEndingReminder(ctx context.Context, email, equipmentName, endDate string) error {
	args := m.Called(ctx, email, equipmentName, endDate)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingRequestDigest(ctx context.Context, email string, count int64) error {
	args := m.Called(ctx, email, count)
	return args.Error(0)
}
