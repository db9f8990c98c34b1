package service

import (
	"context"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/repository"
)

type mapService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRepository
}

func NewMapService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository) MapService {
	return &mapService{equipmentRepo: equipmentRepo, rentalRepo: rentalRepo}
}

// GetMarkers returns the map feed: every available listing with a location,
// plus the delivery pins of the caller's active rentals.
func (s *mapService) GetMarkers(ctx context.Context, userID string) ([]domain.MapMarker, error) {
	equipment, err := s.equipmentRepo.ListAvailableWithLocation(ctx)
	if err != nil {
		return nil, persistence("equipment markers", err)
	}

	markers := make([]domain.MapMarker, 0, len(equipment))
	for _, eq := range equipment {
		markers = append(markers, domain.MapMarker{
			ID:             eq.ID,
			Type:           domain.MarkerTypeEquipment,
			Latitude:       *eq.Latitude,
			Longitude:      *eq.Longitude,
			Title:          eq.Name,
			DailyRateCents: eq.DailyRateCents,
		})
	}

	rentals, err := s.rentalRepo.ListActiveForParty(ctx, userID)
	if err != nil {
		return nil, persistence("rental markers", err)
	}
	for _, rt := range rentals {
		if rt.DeliveryLatitude == nil || rt.DeliveryLongitude == nil {
			continue
		}
		title := "Active rental"
		if rt.Equipment != nil {
			title = rt.Equipment.Name
		}
		markers = append(markers, domain.MapMarker{
			ID:        rt.ID,
			Type:      domain.MarkerTypeRental,
			Latitude:  *rt.DeliveryLatitude,
			Longitude: *rt.DeliveryLongitude,
			Title:     title,
			Status:    rt.Status,
		})
	}

	return markers, nil
}
