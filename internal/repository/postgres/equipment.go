package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, seller_id, category_id, name, description, brand, model, year_manufactured, condition, specifications, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, latitude, longitude, city, available, featured, views_count, created_on, updated_on`

func scanEquipment(row interface{ Scan(...any) error }) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	var specs []byte
	err := row.Scan(
		&eq.ID, &eq.SellerID, &eq.CategoryID, &eq.Name, &eq.Description, &eq.Brand, &eq.Model,
		&eq.YearManufactured, &eq.Condition, &specs, &eq.DailyRateCents, &eq.WeeklyRateCents, &eq.MonthlyRateCents,
		&eq.Latitude, &eq.Longitude, &eq.City, &eq.Available, &eq.Featured, &eq.ViewsCount,
		&eq.CreatedOn, &eq.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &eq.Specifications); err != nil {
			return nil, err
		}
	}
	return eq, nil
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	specs, err := json.Marshal(eq.Specifications)
	if err != nil {
		return err
	}
	query := `INSERT INTO equipment (seller_id, category_id, name, description, brand, model, year_manufactured, condition, specifications, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, latitude, longitude, city, available, featured, views_count, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 0, $18, $18) RETURNING id`
	now := time.Now()
	eq.CreatedOn = now
	eq.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		eq.SellerID, eq.CategoryID, eq.Name, eq.Description, eq.Brand, eq.Model, eq.YearManufactured,
		eq.Condition, specs, eq.DailyRateCents, eq.WeeklyRateCents, eq.MonthlyRateCents,
		eq.Latitude, eq.Longitude, eq.City, eq.Available, eq.Featured, now).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	return scanEquipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	specs, err := json.Marshal(eq.Specifications)
	if err != nil {
		return err
	}
	query := `UPDATE equipment SET category_id=$1, name=$2, description=$3, brand=$4, model=$5, year_manufactured=$6, condition=$7, specifications=$8, daily_rate_cents=$9, weekly_rate_cents=$10, monthly_rate_cents=$11, latitude=$12, longitude=$13, city=$14, available=$15, featured=$16, updated_on=$17
	          WHERE id=$18`
	eq.UpdatedOn = time.Now()
	_, err = r.db.ExecContext(ctx, query,
		eq.CategoryID, eq.Name, eq.Description, eq.Brand, eq.Model, eq.YearManufactured,
		eq.Condition, specs, eq.DailyRateCents, eq.WeeklyRateCents, eq.MonthlyRateCents,
		eq.Latitude, eq.Longitude, eq.City, eq.Available, eq.Featured, eq.UpdatedOn, eq.ID)
	return err
}

func (r *equipmentRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	query := `UPDATE equipment SET available=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, available, time.Now(), id)
	return err
}

func (r *equipmentRepository) IncrementViews(ctx context.Context, id int64) error {
	query := `UPDATE equipment SET views_count = views_count + 1 WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *equipmentRepository) ListBySeller(ctx context.Context, sellerID string, page, pageSize int32) ([]domain.Equipment, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM equipment WHERE seller_id = $1`, sellerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE seller_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, sellerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := collectEquipment(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *equipmentRepository) Search(ctx context.Context, filter domain.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int64, error) {
	where := " WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.AvailableOnly {
		where += " AND available = true"
	}
	if filter.Query != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}
	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND category_id = $%d", argIdx)
		args = append(args, *filter.CategoryID)
		argIdx++
	}
	if filter.Condition != "" {
		where += fmt.Sprintf(" AND condition = $%d", argIdx)
		args = append(args, filter.Condition)
		argIdx++
	}
	if filter.MaxDailyRateCents > 0 {
		where += fmt.Sprintf(" AND daily_rate_cents <= $%d", argIdx)
		args = append(args, filter.MaxDailyRateCents)
		argIdx++
	}
	if filter.City != "" {
		where += fmt.Sprintf(" AND city ILIKE $%d", argIdx)
		args = append(args, filter.City)
		argIdx++
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM equipment"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := "SELECT " + equipmentColumns + " FROM equipment" + where +
		fmt.Sprintf(" ORDER BY featured DESC, created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := collectEquipment(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *equipmentRepository) ListAvailableWithLocation(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE available = true AND latitude IS NOT NULL AND longitude IS NOT NULL`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEquipment(rows)
}

func (r *equipmentRepository) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM equipment WHERE seller_id = $1`, sellerID).Scan(&count)
	return count, err
}

func collectEquipment(rows *sql.Rows) ([]domain.Equipment, error) {
	var items []domain.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *eq)
	}
	return items, rows.Err()
}

// Image management

func (r *equipmentRepository) CreateImage(ctx context.Context, img *domain.EquipmentImage) error {
	query := `INSERT INTO equipment_images (equipment_id, uploader_id, file_name, file_path, mime_type, file_size, display_order, status, expires_on, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	img.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query,
		img.EquipmentID, img.UploaderID, img.FileName, img.FilePath, img.MimeType,
		img.FileSize, img.DisplayOrder, img.Status, img.ExpiresOn, img.CreatedOn).Scan(&img.ID)
}

func (r *equipmentRepository) GetImageByID(ctx context.Context, imageID int64) (*domain.EquipmentImage, error) {
	img := &domain.EquipmentImage{}
	query := `SELECT id, equipment_id, uploader_id, file_name, file_path, mime_type, file_size, display_order, status, expires_on, created_on, confirmed_on
	          FROM equipment_images WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, imageID).Scan(
		&img.ID, &img.EquipmentID, &img.UploaderID, &img.FileName, &img.FilePath, &img.MimeType,
		&img.FileSize, &img.DisplayOrder, &img.Status, &img.ExpiresOn, &img.CreatedOn, &img.ConfirmedOn)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (r *equipmentRepository) GetImages(ctx context.Context, equipmentID int64) ([]domain.EquipmentImage, error) {
	query := `SELECT id, equipment_id, uploader_id, file_name, file_path, mime_type, file_size, display_order, status, expires_on, created_on, confirmed_on
	          FROM equipment_images WHERE equipment_id = $1 AND status = 'CONFIRMED' ORDER BY display_order, id`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.EquipmentImage
	for rows.Next() {
		var img domain.EquipmentImage
		if err := rows.Scan(
			&img.ID, &img.EquipmentID, &img.UploaderID, &img.FileName, &img.FilePath, &img.MimeType,
			&img.FileSize, &img.DisplayOrder, &img.Status, &img.ExpiresOn, &img.CreatedOn, &img.ConfirmedOn); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *equipmentRepository) ConfirmImage(ctx context.Context, imageID, equipmentID int64, fileSize int64) error {
	query := `UPDATE equipment_images SET status='CONFIRMED', equipment_id=$1, file_size=$2, expires_on=NULL, confirmed_on=$3 WHERE id=$4 AND status='PENDING'`
	res, err := r.db.ExecContext(ctx, query, equipmentID, fileSize, time.Now(), imageID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *equipmentRepository) DeleteImage(ctx context.Context, imageID int64) error {
	query := `UPDATE equipment_images SET status='DELETED' WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, imageID)
	return err
}

func (r *equipmentRepository) DeleteExpiredPendingImages(ctx context.Context) (int64, error) {
	query := `DELETE FROM equipment_images WHERE status='PENDING' AND expires_on < $1`
	res, err := r.db.ExecContext(ctx, query, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
