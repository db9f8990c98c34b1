package service

import (
	"context"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/repository"
)

type dashboardService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRepository
}

func NewDashboardService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository) DashboardService {
	return &dashboardService{equipmentRepo: equipmentRepo, rentalRepo: rentalRepo}
}

func (s *dashboardService) GetStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	var err error
	if stats.TotalEquipment, err = s.equipmentRepo.CountBySeller(ctx, userID); err != nil {
		return nil, persistence("equipment count", err)
	}
	// Active and completed counters span both sides of the marketplace: a
	// hospital that only rents equipment still sees its rentals here.
	if stats.ActiveRentals, err = s.countBothSides(ctx, userID, domain.RentalStatusActive); err != nil {
		return nil, persistence("rental count", err)
	}
	if stats.PendingRequests, err = s.rentalRepo.CountBySellerAndStatus(ctx, userID, domain.RentalStatusPending); err != nil {
		return nil, persistence("rental count", err)
	}
	if stats.CompletedRentals, err = s.countBothSides(ctx, userID, domain.RentalStatusCompleted); err != nil {
		return nil, persistence("rental count", err)
	}
	if stats.TotalRevenueCents, err = s.rentalRepo.CompletedRevenueForSeller(ctx, userID); err != nil {
		return nil, persistence("rental revenue", err)
	}

	return stats, nil
}

func (s *dashboardService) countBothSides(ctx context.Context, userID string, status domain.RentalStatus) (int64, error) {
	asSeller, err := s.rentalRepo.CountBySellerAndStatus(ctx, userID, status)
	if err != nil {
		return 0, err
	}
	asBuyer, err := s.rentalRepo.CountByBuyerAndStatus(ctx, userID, status)
	if err != nil {
		return 0, err
	}
	return asSeller + asBuyer, nil
}
