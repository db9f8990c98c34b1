package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"medrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRentalFixture() (*MockRentalRepo, *MockEquipmentRepo, *MockUserRepo, *MockProfileService, *MockEmailService, *MockNotificationRepo, RentalService) {
	rentalRepo := new(MockRentalRepo)
	equipmentRepo := new(MockEquipmentRepo)
	userRepo := new(MockUserRepo)
	profileSvc := new(MockProfileService)
	emailSvc := new(MockEmailService)
	noteRepo := new(MockNotificationRepo)
	svc := NewRentalService(rentalRepo, equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo)
	return rentalRepo, equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo, svc
}

func floatPtr(v float64) *float64 { return &v }

func TestRentalService_CreateRentalRequest(t *testing.T) {
	ctx := context.Background()
	buyerID := "buyer-uuid"
	sellerID := "seller-uuid"

	weekly := int64(60000)
	equipment := &domain.Equipment{
		ID:              7,
		SellerID:        sellerID,
		Name:            "Portable Ventilator",
		DailyRateCents:  10000,
		WeeklyRateCents: &weekly,
	}

	validReq := RentalRequest{
		EquipmentID:       7,
		StartDate:         "2025-03-01",
		EndDate:           "2025-03-11",
		DeliveryAddress:   "12 Clinic Way",
		DeliveryLatitude:  floatPtr(40.7),
		DeliveryLongitude: floatPtr(-74.0),
	}

	t.Run("Success", func(t *testing.T) {
		rentalRepo, equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(equipment, nil)
		profileSvc.On("EnsureProfile", ctx, buyerID).Return(&domain.Profile{ID: buyerID, FullName: "Dr. Chen"}, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
		userRepo.On("GetByID", ctx, sellerID).Return(&domain.User{ID: sellerID, Email: "seller@hospital.test"}, nil)
		emailSvc.On("SendRentalRequestNotification", ctx, "seller@hospital.test", "Dr. Chen", "Portable Ventilator").Return(nil)

		rt, err := svc.CreateRentalRequest(ctx, buyerID, validReq)
		assert.NoError(t, err)
		assert.NotNil(t, rt)
		assert.Equal(t, domain.RentalStatusPending, rt.Status)
		assert.Equal(t, buyerID, rt.BuyerID)
		assert.Equal(t, sellerID, rt.SellerID)
		// 10 days = 1 week at 60000 + 3 days at 10000
		assert.Equal(t, int64(90000), rt.TotalAmountCents)
	})

	t.Run("Self rental rejected before any other check", func(t *testing.T) {
		_, equipmentRepo, _, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(equipment, nil)

		req := validReq
		req.DeliveryLatitude = nil // would also fail, but self-rental wins
		rt, err := svc.CreateRentalRequest(ctx, sellerID, req)
		assert.ErrorIs(t, err, ErrSelfRental)
		assert.Nil(t, rt)
	})

	t.Run("Missing delivery location", func(t *testing.T) {
		_, equipmentRepo, _, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(equipment, nil)

		req := validReq
		req.DeliveryLongitude = nil
		rt, err := svc.CreateRentalRequest(ctx, buyerID, req)
		assert.ErrorIs(t, err, ErrMissingLocation)
		assert.Nil(t, rt)
	})

	t.Run("Malformed date", func(t *testing.T) {
		_, equipmentRepo, _, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(equipment, nil)

		req := validReq
		req.StartDate = "03/01/2025"
		rt, err := svc.CreateRentalRequest(ctx, buyerID, req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		assert.Nil(t, rt)
	})

	t.Run("End before start", func(t *testing.T) {
		_, equipmentRepo, _, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(equipment, nil)

		req := validReq
		req.StartDate = "2025-03-11"
		req.EndDate = "2025-03-01"
		rt, err := svc.CreateRentalRequest(ctx, buyerID, req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		assert.Nil(t, rt)
	})

	t.Run("Zero-day range", func(t *testing.T) {
		_, equipmentRepo, _, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(equipment, nil)

		req := validReq
		req.EndDate = req.StartDate
		rt, err := svc.CreateRentalRequest(ctx, buyerID, req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		assert.Nil(t, rt)
	})

	t.Run("Profile provisioning failure surfaces as such", func(t *testing.T) {
		_, equipmentRepo, _, profileSvc, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(equipment, nil)
		profileSvc.On("EnsureProfile", ctx, buyerID).Return(nil, errors.New("db down"))

		rt, err := svc.CreateRentalRequest(ctx, buyerID, validReq)
		assert.ErrorIs(t, err, ErrProfileProvisioning)
		assert.Nil(t, rt)
	})

	t.Run("Unknown equipment", func(t *testing.T) {
		_, equipmentRepo, _, _, _, _, svc := newRentalFixture()

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(nil, sql.ErrNoRows)

		rt, err := svc.CreateRentalRequest(ctx, buyerID, validReq)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, rt)
	})
}

func TestRentalService_Transitions(t *testing.T) {
	ctx := context.Background()
	buyerID := "buyer-uuid"
	sellerID := "seller-uuid"

	pendingRental := func() *domain.Rental {
		return &domain.Rental{
			ID:          1,
			EquipmentID: 7,
			BuyerID:     buyerID,
			SellerID:    sellerID,
			Status:      domain.RentalStatusPending,
		}
	}

	// notifyTransition runs best-effort lookups after the status write; the
	// mocks only need to not panic on them.
	stubNotifications := func(equipmentRepo *MockEquipmentRepo, userRepo *MockUserRepo, profileSvc *MockProfileService, emailSvc *MockEmailService, noteRepo *MockNotificationRepo) {
		equipmentRepo.On("GetByID", ctx, mock.Anything).Return(&domain.Equipment{ID: 7, Name: "Portable Ventilator"}, nil).Maybe()
		profileSvc.On("GetProfile", ctx, mock.Anything).Return(&domain.Profile{FullName: "Someone"}, nil).Maybe()
		userRepo.On("GetByID", ctx, mock.Anything).Return(&domain.User{Email: "party@hospital.test"}, nil).Maybe()
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Maybe()
		emailSvc.On("SendRentalApprovalNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		emailSvc.On("SendRentalRejectionNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		emailSvc.On("SendRentalCancellationNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		emailSvc.On("SendRentalDeliveryNotification", ctx, mock.Anything, mock.Anything).Return(nil).Maybe()
		emailSvc.On("SendRentalCompletionNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	}

	t.Run("Approve flips availability off in the same write", func(t *testing.T) {
		rentalRepo, equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo, svc := newRentalFixture()
		stubNotifications(equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo)

		rentalRepo.On("GetByID", ctx, int64(1)).Return(pendingRental(), nil)
		rentalRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Rental"), mock.MatchedBy(func(available *bool) bool {
			return available != nil && *available == false
		})).Return(nil)

		rt, err := svc.ApproveRentalRequest(ctx, sellerID, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusApproved, rt.Status)
	})

	t.Run("Reject leaves availability untouched", func(t *testing.T) {
		rentalRepo, equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo, svc := newRentalFixture()
		stubNotifications(equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo)

		rentalRepo.On("GetByID", ctx, int64(1)).Return(pendingRental(), nil)
		rentalRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Rental"), (*bool)(nil)).Return(nil)

		rt, err := svc.RejectRentalRequest(ctx, sellerID, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusRejected, rt.Status)
	})

	t.Run("Complete restores availability", func(t *testing.T) {
		rentalRepo, equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo, svc := newRentalFixture()
		stubNotifications(equipmentRepo, userRepo, profileSvc, emailSvc, noteRepo)

		active := pendingRental()
		active.Status = domain.RentalStatusActive
		rentalRepo.On("GetByID", ctx, int64(1)).Return(active, nil)
		rentalRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*domain.Rental"), mock.MatchedBy(func(available *bool) bool {
			return available != nil && *available == true
		})).Return(nil)

		rt, err := svc.CompleteRental(ctx, buyerID, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCompleted, rt.Status)
	})

	t.Run("Buyer cannot approve", func(t *testing.T) {
		rentalRepo, _, _, _, _, _, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, int64(1)).Return(pendingRental(), nil)

		rt, err := svc.ApproveRentalRequest(ctx, buyerID, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, rt)
		rentalRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stranger gets invalid transition, not a role hint", func(t *testing.T) {
		rentalRepo, _, _, _, _, _, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, int64(1)).Return(pendingRental(), nil)

		rt, err := svc.CancelRental(ctx, "stranger-uuid", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, rt)
	})

	t.Run("Store failure wraps as persistence error", func(t *testing.T) {
		rentalRepo, _, _, _, _, _, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, int64(1)).Return(pendingRental(), nil)
		rentalRepo.On("UpdateStatus", ctx, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		rt, err := svc.ApproveRentalRequest(ctx, sellerID, 1)
		assert.Error(t, err)
		assert.Nil(t, rt)
		var perr *PersistenceError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("Unknown rental", func(t *testing.T) {
		rentalRepo, _, _, _, _, _, svc := newRentalFixture()

		rentalRepo.On("GetByID", ctx, int64(99)).Return(nil, sql.ErrNoRows)

		rt, err := svc.CompleteRental(ctx, buyerID, 99)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, rt)
	})
}

func TestRentalService_GetRental(t *testing.T) {
	ctx := context.Background()
	rental := &domain.Rental{ID: 1, BuyerID: "buyer-uuid", SellerID: "seller-uuid"}

	t.Run("Party can read", func(t *testing.T) {
		rentalRepo, _, _, _, _, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int64(1)).Return(rental, nil)

		rt, err := svc.GetRental(ctx, "seller-uuid", 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rt.ID)
	})

	t.Run("Stranger cannot read", func(t *testing.T) {
		rentalRepo, _, _, _, _, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int64(1)).Return(rental, nil)

		rt, err := svc.GetRental(ctx, "stranger-uuid", 1)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, rt)
	})
}
