package domain

import "time"

type EquipmentCondition string

const (
	EquipmentConditionNew       EquipmentCondition = "new"
	EquipmentConditionExcellent EquipmentCondition = "excellent"
	EquipmentConditionGood      EquipmentCondition = "good"
	EquipmentConditionFair      EquipmentCondition = "fair"
)

type Equipment struct {
	ID               int64              `json:"id"`
	SellerID         string             `json:"seller_id"`
	Seller           *Profile           `json:"seller,omitempty"` // populated on detail fetches
	CategoryID       *int64             `json:"category_id,omitempty"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	Brand            string             `json:"brand,omitempty"`
	Model            string             `json:"model,omitempty"`
	YearManufactured *int32             `json:"year_manufactured,omitempty"`
	Condition        EquipmentCondition `json:"condition"`
	// Specifications holds free-form technical attributes (e.g. "weight",
	// "power supply") keyed by label.
	Specifications map[string]string `json:"specifications,omitempty"`
	DailyRateCents int64             `json:"daily_rate_cents"`
	// Weekly/monthly rates are optional discounts. The discount relationship
	// against the daily rate is not enforced.
	WeeklyRateCents  *int64    `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents *int64    `json:"monthly_rate_cents,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	City             string    `json:"city,omitempty"`
	Available        bool      `json:"available"`
	Featured         bool      `json:"featured"`
	ViewsCount       int64     `json:"views_count"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// EquipmentImage tracks an uploaded listing image. Images are created in
// PENDING state when an upload URL is issued and confirmed once the client
// finishes the upload; stale pending rows are purged by a nightly job.
type EquipmentImage struct {
	ID           int64      `json:"id"`
	EquipmentID  int64      `json:"equipment_id"`
	UploaderID   string     `json:"uploader_id"`
	FileName     string     `json:"file_name"`
	FilePath     string     `json:"file_path"`
	MimeType     string     `json:"mime_type"`
	FileSize     int64      `json:"file_size"`
	DisplayOrder int32      `json:"display_order"`
	Status       string     `json:"status"` // PENDING, CONFIRMED, DELETED
	ExpiresOn    *time.Time `json:"expires_on,omitempty"`
	CreatedOn    time.Time  `json:"created_on"`
	ConfirmedOn  *time.Time `json:"confirmed_on,omitempty"`
}

const (
	ImageStatusPending   = "PENDING"
	ImageStatusConfirmed = "CONFIRMED"
	ImageStatusDeleted   = "DELETED"
)

// EquipmentFilter narrows marketplace searches.
type EquipmentFilter struct {
	Query             string
	CategoryID        *int64
	Condition         EquipmentCondition
	MaxDailyRateCents int64
	City              string
	AvailableOnly     bool
}

type MarkerType string

const (
	MarkerTypeEquipment MarkerType = "equipment"
	MarkerTypeRental    MarkerType = "rental"
)

// MapMarker is a point rendered by the map widget: either an available
// listing or one of the caller's active rentals (delivery location).
type MapMarker struct {
	ID             int64        `json:"id"`
	Type           MarkerType   `json:"type"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	Title          string       `json:"title"`
	Status         RentalStatus `json:"status,omitempty"`
	DailyRateCents int64        `json:"daily_rate_cents,omitempty"`
}

type DashboardStats struct {
	TotalEquipment    int64 `json:"total_equipment"`
	ActiveRentals     int64 `json:"active_rentals"`
	PendingRequests   int64 `json:"pending_requests"`
	CompletedRentals  int64 `json:"completed_rentals"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}
