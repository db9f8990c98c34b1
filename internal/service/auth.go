package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/logger"
	"medrent-backend/internal/repository"
	"medrent-backend/internal/security"
)

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	emailSvc    EmailService
	tokens      security.TokenManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	emailSvc EmailService,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		emailSvc:    emailSvc,
		tokens:      tokens,
	}
}

func (s *authService) Signup(ctx context.Context, email, password, fullName, hospitalName string, role domain.ProfileRole) (*domain.Profile, string, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", "", persistence("user lookup", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", persistence("user create", err)
	}

	if role == "" {
		role = domain.ProfileRoleBoth
	}
	profile := &domain.Profile{
		ID:           user.ID,
		FullName:     fullName,
		HospitalName: hospitalName,
		Role:         role,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, "", "", persistence("profile create", err)
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", err
	}

	if err := s.emailSvc.SendWelcome(ctx, email, fullName); err != nil {
		logger.Warn("Failed to send welcome email", "email", email, "error", err)
	}

	return profile, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", persistence("user lookup", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Logout is stateless on the server side; tokens simply expire. A refresh
// token blacklist would live here if one is ever needed.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", persistence("user lookup", err)
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
