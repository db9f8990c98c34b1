package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, equipment_id, buyer_id, seller_id, status, start_date, end_date, total_amount_cents, delivery_address, delivery_latitude, delivery_longitude, notes, created_on, updated_on`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	// delivery_address and notes are nullable columns.
	var address, notes sql.NullString
	err := row.Scan(
		&rt.ID, &rt.EquipmentID, &rt.BuyerID, &rt.SellerID, &rt.Status, &rt.StartDate, &rt.EndDate,
		&rt.TotalAmountCents, &address, &rt.DeliveryLatitude, &rt.DeliveryLongitude,
		&notes, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	rt.DeliveryAddress = address.String
	rt.Notes = notes.String
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (equipment_id, buyer_id, seller_id, status, start_date, end_date, total_amount_cents, delivery_address, delivery_latitude, delivery_longitude, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12) RETURNING id`
	now := time.Now()
	rt.CreatedOn = now
	rt.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		rt.EquipmentID, rt.BuyerID, rt.SellerID, rt.Status, rt.StartDate, rt.EndDate,
		rt.TotalAmountCents, rt.DeliveryAddress, rt.DeliveryLatitude, rt.DeliveryLongitude,
		rt.Notes, now).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return scanRental(r.db.QueryRowContext(ctx, query, id))
}

// UpdateStatus writes the rental's status and, when available is non-nil,
// flips the equipment availability flag inside the same transaction.
func (r *rentalRepository) UpdateStatus(ctx context.Context, rt *domain.Rental, available *bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rt.UpdatedOn = time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status=$1, updated_on=$2 WHERE id=$3`,
		rt.Status, rt.UpdatedOn, rt.ID); err != nil {
		return err
	}

	if available != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE equipment SET available=$1, updated_on=$2 WHERE id=$3`,
			*available, rt.UpdatedOn, rt.EquipmentID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *rentalRepository) ListByBuyer(ctx context.Context, buyerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error) {
	return r.list(ctx, "buyer_id", buyerID, status, page, pageSize)
}

func (r *rentalRepository) ListBySeller(ctx context.Context, sellerID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error) {
	return r.list(ctx, "seller_id", sellerID, status, page, pageSize)
}

func (r *rentalRepository) list(ctx context.Context, partyColumn, partyID string, status domain.RentalStatus, page, pageSize int32) ([]domain.Rental, int64, error) {
	where := fmt.Sprintf(" WHERE %s = $1", partyColumn)
	args := []any{partyID}
	argIdx := 2
	if status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM rentals"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := "SELECT " + rentalColumns + " FROM rentals" + where +
		fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rentals, err := collectRentals(rows)
	if err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func (r *rentalRepository) ListActiveForParty(ctx context.Context, partyID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'active' AND (buyer_id = $1 OR seller_id = $1)`
	rows, err := r.db.QueryContext(ctx, query, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'active' AND end_date < $1`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) CountBySellerAndStatus(ctx context.Context, sellerID string, status domain.RentalStatus) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rentals WHERE seller_id = $1 AND status = $2`, sellerID, status).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountByBuyerAndStatus(ctx context.Context, buyerID string, status domain.RentalStatus) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rentals WHERE buyer_id = $1 AND status = $2`, buyerID, status).Scan(&count)
	return count, err
}

func (r *rentalRepository) CompletedRevenueForSeller(ctx context.Context, sellerID string) (int64, error) {
	var revenue int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_amount_cents), 0) FROM rentals WHERE seller_id = $1 AND status = 'completed'`, sellerID).Scan(&revenue)
	return revenue, err
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
