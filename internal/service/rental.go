package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/logger"
	"medrent-backend/internal/repository"
	"medrent-backend/internal/utils"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
	profileSvc    ProfileService
	emailSvc      EmailService
	noteRepo      repository.NotificationRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	profileSvc ProfileService,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		profileSvc:    profileSvc,
		emailSvc:      emailSvc,
		noteRepo:      noteRepo,
	}
}

const dateLayout = "2006-01-02"

// CreateRentalRequest validates a candidate request and, when every check
// passes, writes a pending rental with the total amount precomputed. Checks
// run in order and short-circuit: self-rental, delivery location, date
// range, then profile provisioning.
func (s *rentalService) CreateRentalRequest(ctx context.Context, buyerID string, req RentalRequest) (*domain.Rental, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistence("equipment lookup", err)
	}

	if eq.SellerID == buyerID {
		return nil, ErrSelfRental
	}

	if req.DeliveryLatitude == nil || req.DeliveryLongitude == nil {
		return nil, ErrMissingLocation
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	// DaysBetween uses the absolute difference, which would silently accept
	// a reversed range, so ordering is checked explicitly first.
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	days := utils.DaysBetween(start, end)
	if days <= 0 {
		return nil, ErrInvalidDateRange
	}

	buyer, err := s.profileSvc.EnsureProfile(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileProvisioning, err)
	}

	rental := &domain.Rental{
		EquipmentID:       eq.ID,
		BuyerID:           buyerID,
		SellerID:          eq.SellerID,
		Status:            domain.RentalStatusPending,
		StartDate:         start,
		EndDate:           end,
		TotalAmountCents:  utils.CalculateRentalCost(eq.DailyRateCents, eq.WeeklyRateCents, eq.MonthlyRateCents, days),
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryLatitude:  req.DeliveryLatitude,
		DeliveryLongitude: req.DeliveryLongitude,
		Notes:             req.Notes,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, persistence("rental create", err)
	}

	s.notifyParty(ctx, eq.SellerID, "New Rental Request",
		fmt.Sprintf("%s requested to rent %s", buyer.FullName, eq.Name),
		"RENTAL_REQUEST", rental.ID)
	if seller, err := s.userRepo.GetByID(ctx, eq.SellerID); err == nil {
		_ = s.emailSvc.SendRentalRequestNotification(ctx, seller.Email, buyer.FullName, eq.Name)
	}

	return rental, nil
}

func (s *rentalService) ApproveRentalRequest(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error) {
	return s.transition(ctx, actorID, rentalID, domain.RentalActionApprove)
}

func (s *rentalService) RejectRentalRequest(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error) {
	return s.transition(ctx, actorID, rentalID, domain.RentalActionReject)
}

func (s *rentalService) CancelRental(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error) {
	return s.transition(ctx, actorID, rentalID, domain.RentalActionCancel)
}

func (s *rentalService) MarkDelivered(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error) {
	return s.transition(ctx, actorID, rentalID, domain.RentalActionDeliver)
}

func (s *rentalService) CompleteRental(ctx context.Context, actorID string, rentalID int64) (*domain.Rental, error) {
	return s.transition(ctx, actorID, rentalID, domain.RentalActionComplete)
}

// transition is the single path every status change goes through. The
// lifecycle table decides whether the actor may perform the action; on
// success the new status is persisted together with the equipment
// availability flip where one applies. A store failure leaves the rental in
// its prior status.
func (s *rentalService) transition(ctx context.Context, actorID string, rentalID int64, action domain.RentalAction) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistence("rental lookup", err)
	}

	role := rt.RoleOf(actorID)
	if role == "" {
		return nil, domain.ErrInvalidTransition
	}

	if err := rt.ApplyTransition(action, role); err != nil {
		return nil, err
	}

	// Approval takes the listing off the market; completion returns it.
	// Reject/cancel never flipped availability, so nothing to restore.
	var available *bool
	switch action {
	case domain.RentalActionApprove:
		f := false
		available = &f
	case domain.RentalActionComplete:
		t := true
		available = &t
	}

	if err := s.rentalRepo.UpdateStatus(ctx, rt, available); err != nil {
		return nil, persistence("rental status update", err)
	}

	s.notifyTransition(ctx, rt, action)
	return rt, nil
}

func (s *rentalService) notifyTransition(ctx context.Context, rt *domain.Rental, action domain.RentalAction) {
	eq, _ := s.equipmentRepo.GetByID(ctx, rt.EquipmentID)
	equipmentName := "equipment"
	if eq != nil {
		equipmentName = eq.Name
	}
	buyer, _ := s.profileSvc.GetProfile(ctx, rt.BuyerID)
	seller, _ := s.profileSvc.GetProfile(ctx, rt.SellerID)
	buyerName, sellerName := "the buyer", "the seller"
	if buyer != nil {
		buyerName = buyer.FullName
	}
	if seller != nil {
		sellerName = seller.FullName
	}

	switch action {
	case domain.RentalActionApprove:
		s.notifyParty(ctx, rt.BuyerID, "Rental Approved",
			fmt.Sprintf("Your rental request for %s was approved by %s", equipmentName, sellerName),
			"RENTAL_APPROVED", rt.ID)
		if u, err := s.userRepo.GetByID(ctx, rt.BuyerID); err == nil {
			_ = s.emailSvc.SendRentalApprovalNotification(ctx, u.Email, equipmentName, sellerName)
		}
	case domain.RentalActionReject:
		s.notifyParty(ctx, rt.BuyerID, "Rental Rejected",
			fmt.Sprintf("Your rental request for %s was rejected by %s", equipmentName, sellerName),
			"RENTAL_REJECTED", rt.ID)
		if u, err := s.userRepo.GetByID(ctx, rt.BuyerID); err == nil {
			_ = s.emailSvc.SendRentalRejectionNotification(ctx, u.Email, equipmentName, sellerName)
		}
	case domain.RentalActionCancel:
		s.notifyParty(ctx, rt.SellerID, "Rental Cancelled",
			fmt.Sprintf("%s cancelled the rental request for %s", buyerName, equipmentName),
			"RENTAL_CANCELLED", rt.ID)
		if u, err := s.userRepo.GetByID(ctx, rt.SellerID); err == nil {
			_ = s.emailSvc.SendRentalCancellationNotification(ctx, u.Email, buyerName, equipmentName)
		}
	case domain.RentalActionDeliver:
		s.notifyParty(ctx, rt.BuyerID, "Equipment Delivered",
			fmt.Sprintf("%s marked %s as delivered; the rental is now active", sellerName, equipmentName),
			"RENTAL_ACTIVE", rt.ID)
		if u, err := s.userRepo.GetByID(ctx, rt.BuyerID); err == nil {
			_ = s.emailSvc.SendRentalDeliveryNotification(ctx, u.Email, equipmentName)
		}
	case domain.RentalActionComplete:
		for _, partyID := range []string{rt.BuyerID, rt.SellerID} {
			s.notifyParty(ctx, partyID, "Rental Completed",
				fmt.Sprintf("The rental of %s has been completed", equipmentName),
				"RENTAL_COMPLETED", rt.ID)
			if u, err := s.userRepo.GetByID(ctx, partyID); err == nil {
				_ = s.emailSvc.SendRentalCompletionNotification(ctx, u.Email, equipmentName, rt.TotalAmountCents)
			}
		}
	}
}

// notifyParty writes an in-app notification; dashboards poll these to
// refresh cached rental views. Failures are logged, never surfaced.
func (s *rentalService) notifyParty(ctx context.Context, userID, title, message, kind string, rentalID int64) {
	note := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":      kind,
			"rental_id": fmt.Sprintf("%d", rentalID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to write notification", "user_id", userID, "type", kind, "error", err)
	}
}

func (s *rentalService) ListRentals(ctx context.Context, buyerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error) {
	rentals, count, err := s.rentalRepo.ListByBuyer(ctx, buyerID, status, page, pageSize)
	if err != nil {
		return nil, 0, persistence("rental list", err)
	}
	return rentals, count, nil
}

func (s *rentalService) ListLendings(ctx context.Context, sellerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error) {
	rentals, count, err := s.rentalRepo.ListBySeller(ctx, sellerID, status, page, pageSize)
	if err != nil {
		return nil, 0, persistence("rental list", err)
	}
	return rentals, count, nil
}

func (s *rentalService) GetRental(ctx context.Context, userID string, rentalID int64) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistence("rental lookup", err)
	}
	if rt.RoleOf(userID) == "" {
		return nil, ErrUnauthorized
	}
	return rt, nil
}
