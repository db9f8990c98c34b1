package postgres

import (
	"context"
	"testing"
	"time"

	"medrent-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEquipmentRepository_Create_PersistsSpecificationsAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	eq := &domain.Equipment{
		SellerID:       "seller-uuid",
		Name:           "Portable Ultrasound",
		Condition:      domain.EquipmentConditionExcellent,
		DailyRateCents: 25000,
		Specifications: map[string]string{"power": "110V", "weight": "4.5kg"},
		Available:      true,
	}

	mock.ExpectQuery("INSERT INTO equipment").
		WithArgs(eq.SellerID, eq.CategoryID, eq.Name, eq.Description, eq.Brand, eq.Model,
			eq.YearManufactured, eq.Condition, []byte(`{"power":"110V","weight":"4.5kg"}`),
			eq.DailyRateCents, eq.WeeklyRateCents, eq.MonthlyRateCents,
			eq.Latitude, eq.Longitude, eq.City, eq.Available, eq.Featured, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err = repo.Create(ctx, eq)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), eq.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_GetByID_ReadsSpecifications(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "seller_id", "category_id", "name", "description", "brand", "model",
		"year_manufactured", "condition", "specifications", "daily_rate_cents",
		"weekly_rate_cents", "monthly_rate_cents", "latitude", "longitude", "city",
		"available", "featured", "views_count", "created_on", "updated_on",
	}).AddRow(
		int64(11), "seller-uuid", nil, "Portable Ultrasound", "", "", "",
		nil, domain.EquipmentConditionExcellent, []byte(`{"weight":"4.5kg"}`), int64(25000),
		nil, nil, nil, nil, "",
		true, false, int64(0), now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM equipment WHERE id").
		WithArgs(int64(11)).
		WillReturnRows(rows)

	got, err := repo.GetByID(ctx, 11)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"weight": "4.5kg"}, got.Specifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_GetByID_NullSpecifications(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "seller_id", "category_id", "name", "description", "brand", "model",
		"year_manufactured", "condition", "specifications", "daily_rate_cents",
		"weekly_rate_cents", "monthly_rate_cents", "latitude", "longitude", "city",
		"available", "featured", "views_count", "created_on", "updated_on",
	}).AddRow(
		int64(12), "seller-uuid", nil, "Infusion Pump", "", "", "",
		nil, domain.EquipmentConditionGood, nil, int64(8000),
		nil, nil, nil, nil, "",
		true, false, int64(0), now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM equipment WHERE id").
		WithArgs(int64(12)).
		WillReturnRows(rows)

	got, err := repo.GetByID(ctx, 12)
	assert.NoError(t, err)
	assert.Nil(t, got.Specifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}
