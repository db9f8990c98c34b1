package postgres

import (
	"context"
	"database/sql"
	"time"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, full_name, hospital_name, role, phone, address, city, latitude, longitude, avatar_url, verified, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now()
	p.CreatedOn = now
	p.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.FullName, p.HospitalName, p.Role, p.Phone, p.Address, p.City,
		p.Latitude, p.Longitude, p.AvatarURL, p.Verified, p.CreatedOn, p.UpdatedOn)
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT id, full_name, hospital_name, role, phone, address, city, latitude, longitude, avatar_url, verified, created_on, updated_on
	          FROM profiles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FullName, &p.HospitalName, &p.Role, &p.Phone, &p.Address, &p.City,
		&p.Latitude, &p.Longitude, &p.AvatarURL, &p.Verified, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET full_name=$1, hospital_name=$2, role=$3, phone=$4, address=$5, city=$6, latitude=$7, longitude=$8, avatar_url=$9, verified=$10, updated_on=$11
	          WHERE id=$12`
	p.UpdatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		p.FullName, p.HospitalName, p.Role, p.Phone, p.Address, p.City,
		p.Latitude, p.Longitude, p.AvatarURL, p.Verified, p.UpdatedOn, p.ID)
	return err
}
