package postgres

import (
	"database/sql"

	"medrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProfileRepository
	repository.EquipmentRepository
	repository.CategoryRepository
	repository.RentalRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		EquipmentRepository:    NewEquipmentRepository(db),
		CategoryRepository:     NewCategoryRepository(db),
		RentalRepository:       NewRentalRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
