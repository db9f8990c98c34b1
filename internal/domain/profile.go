package domain

import "time"

// User is the authentication account. The marketplace-facing identity lives
// in Profile, which may be provisioned lazily after signup.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

type ProfileRole string

const (
	ProfileRoleBuyer  ProfileRole = "buyer"
	ProfileRoleSeller ProfileRole = "seller"
	ProfileRoleBoth   ProfileRole = "both"
)

type Profile struct {
	ID           string      `json:"id"` // same UUID as the auth account
	FullName     string      `json:"full_name"`
	HospitalName string      `json:"hospital_name,omitempty"`
	Role         ProfileRole `json:"role"`
	Phone        string      `json:"phone,omitempty"`
	Address      string      `json:"address,omitempty"`
	City         string      `json:"city,omitempty"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
	AvatarURL    string      `json:"avatar_url,omitempty"`
	Verified     bool        `json:"verified"`
	CreatedOn    time.Time   `json:"created_on"`
	UpdatedOn    time.Time   `json:"updated_on"`
}
