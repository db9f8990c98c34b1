package service

import (
	"context"
	"database/sql"
	"errors"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/logger"
	"medrent-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	categoryRepo  repository.CategoryRepository
	profileRepo   repository.ProfileRepository
}

func NewEquipmentService(
	equipmentRepo repository.EquipmentRepository,
	categoryRepo repository.CategoryRepository,
	profileRepo repository.ProfileRepository,
) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		categoryRepo:  categoryRepo,
		profileRepo:   profileRepo,
	}
}

func (s *equipmentService) AddEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.DailyRateCents <= 0 {
		return errors.New("daily rate must be positive")
	}
	if eq.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *eq.CategoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return persistence("category lookup", err)
		}
	}
	eq.Available = true
	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return persistence("equipment create", err)
	}
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, []domain.EquipmentImage, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, persistence("equipment lookup", err)
	}

	if seller, err := s.profileRepo.GetByID(ctx, eq.SellerID); err == nil {
		eq.Seller = seller
	}

	images, err := s.equipmentRepo.GetImages(ctx, id)
	if err != nil {
		return nil, nil, persistence("equipment images", err)
	}

	// Detail views bump the counter; a lost increment is not worth failing
	// the fetch over.
	if err := s.equipmentRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("Failed to increment view count", "equipment_id", id, "error", err)
	}

	return eq, images, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, sellerID string, eq *domain.Equipment) error {
	existing, err := s.equipmentRepo.GetByID(ctx, eq.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return persistence("equipment lookup", err)
	}
	if existing.SellerID != sellerID {
		return ErrUnauthorized
	}
	eq.SellerID = existing.SellerID
	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return persistence("equipment update", err)
	}
	return nil
}

func (s *equipmentService) SetAvailability(ctx context.Context, sellerID string, id int64, available bool) error {
	existing, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return persistence("equipment lookup", err)
	}
	if existing.SellerID != sellerID {
		return ErrUnauthorized
	}
	if err := s.equipmentRepo.SetAvailability(ctx, id, available); err != nil {
		return persistence("equipment availability", err)
	}
	return nil
}

func (s *equipmentService) SearchEquipment(ctx context.Context, filter domain.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int64, error) {
	items, count, err := s.equipmentRepo.Search(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, persistence("equipment search", err)
	}
	return items, count, nil
}

func (s *equipmentService) ListMyEquipment(ctx context.Context, sellerID string, page, pageSize int32) ([]domain.Equipment, int64, error) {
	items, count, err := s.equipmentRepo.ListBySeller(ctx, sellerID, page, pageSize)
	if err != nil {
		return nil, 0, persistence("equipment list", err)
	}
	return items, count, nil
}

func (s *equipmentService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, persistence("category list", err)
	}
	return categories, nil
}
