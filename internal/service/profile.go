package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/logger"
	"medrent-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, userRepo: userRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistence("profile lookup", err)
	}
	return p, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return persistence("profile update", err)
	}
	return nil
}

// EnsureProfile provisions a minimal profile when the account has none yet.
// The default role is "both" and the display name falls back to the local
// part of the account email.
func (s *profileService) EnsureProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, persistence("profile lookup", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, persistence("user lookup", err)
	}

	name := user.Email
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}

	p = &domain.Profile{
		ID:       userID,
		FullName: name,
		Role:     domain.ProfileRoleBoth,
	}
	if err := s.profileRepo.Create(ctx, p); err != nil {
		return nil, persistence("profile create", err)
	}
	logger.Info("Provisioned default profile", "user_id", userID)
	return p, nil
}
