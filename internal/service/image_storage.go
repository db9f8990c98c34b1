package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/repository"
	"medrent-backend/internal/storage"
)

const (
	uploadURLTTL     = 15 * time.Minute
	downloadURLTTL   = 1 * time.Hour
	pendingImageTTL  = 24 * time.Hour
	maxImagesPerItem = 10
)

type imageStorageService struct {
	equipmentRepo repository.EquipmentRepository
	blobs         storage.StorageInterface
}

func NewImageStorageService(equipmentRepo repository.EquipmentRepository, blobs storage.StorageInterface) ImageStorageService {
	return &imageStorageService{equipmentRepo: equipmentRepo, blobs: blobs}
}

// GetUploadURL reserves a PENDING image row and hands the client a
// presigned-style URL to push the bytes to. The row is confirmed by
// ConfirmImageUpload once the upload finished; unconfirmed rows expire.
func (s *imageStorageService) GetUploadURL(ctx context.Context, userID string, equipmentID int64, fileName, contentType string) (*domain.EquipmentImage, string, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", persistence("equipment lookup", err)
	}
	if eq.SellerID != userID {
		return nil, "", ErrUnauthorized
	}

	existing, err := s.equipmentRepo.GetImages(ctx, equipmentID)
	if err != nil {
		return nil, "", persistence("equipment images", err)
	}
	if len(existing) >= maxImagesPerItem {
		return nil, "", fmt.Errorf("equipment already has %d images", maxImagesPerItem)
	}

	key := fmt.Sprintf("equipment/%d/%s%s", equipmentID, uuid.New().String(), filepath.Ext(fileName))
	expires := time.Now().Add(pendingImageTTL)
	img := &domain.EquipmentImage{
		EquipmentID:  equipmentID,
		UploaderID:   userID,
		FileName:     fileName,
		FilePath:     key,
		MimeType:     contentType,
		DisplayOrder: int32(len(existing)),
		Status:       domain.ImageStatusPending,
		ExpiresOn:    &expires,
	}
	if err := s.equipmentRepo.CreateImage(ctx, img); err != nil {
		return nil, "", persistence("image create", err)
	}

	uploadURL, err := s.blobs.GeneratePresignedUploadURL(ctx, key, contentType, uploadURLTTL)
	if err != nil {
		return nil, "", err
	}
	return img, uploadURL, nil
}

func (s *imageStorageService) ConfirmImageUpload(ctx context.Context, userID string, imageID, equipmentID int64) (*domain.EquipmentImage, error) {
	img, err := s.equipmentRepo.GetImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistence("image lookup", err)
	}
	if img.UploaderID != userID {
		return nil, ErrUnauthorized
	}

	exists, size, err := s.blobs.FileExists(ctx, img.FilePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("upload not found in storage")
	}

	if err := s.equipmentRepo.ConfirmImage(ctx, imageID, equipmentID, size); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistence("image confirm", err)
	}
	return s.equipmentRepo.GetImageByID(ctx, imageID)
}

func (s *imageStorageService) GetDownloadURL(ctx context.Context, imageID int64) (string, error) {
	img, err := s.equipmentRepo.GetImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", persistence("image lookup", err)
	}
	return s.blobs.GeneratePresignedDownloadURL(ctx, img.FilePath, downloadURLTTL)
}

func (s *imageStorageService) GetEquipmentImages(ctx context.Context, equipmentID int64) ([]domain.EquipmentImage, error) {
	images, err := s.equipmentRepo.GetImages(ctx, equipmentID)
	if err != nil {
		return nil, persistence("equipment images", err)
	}
	return images, nil
}

func (s *imageStorageService) DeleteImage(ctx context.Context, userID string, imageID int64) error {
	img, err := s.equipmentRepo.GetImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return persistence("image lookup", err)
	}
	if img.UploaderID != userID {
		return ErrUnauthorized
	}

	if err := s.blobs.DeleteFile(ctx, img.FilePath); err != nil {
		return err
	}
	if err := s.equipmentRepo.DeleteImage(ctx, imageID); err != nil {
		return persistence("image delete", err)
	}
	return nil
}
