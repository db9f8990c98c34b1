package service

import (
	"context"
	"database/sql"
	"errors"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int64, error) {
	offset := (page - 1) * pageSize
	notes, count, err := s.noteRepo.List(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, 0, persistence("notification list", err)
	}
	return notes, count, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID string, notificationID int64) error {
	if err := s.noteRepo.MarkAsRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return persistence("notification update", err)
	}
	return nil
}
