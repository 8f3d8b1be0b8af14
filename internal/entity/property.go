package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Property struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	PropertyType string    `gorm:"type:varchar(64);not null"`

	Price float64 `gorm:"not null"`
	Area  float64 `gorm:"not null"`

	Bedrooms   int    `gorm:"default:0"`
	Bathrooms  int    `gorm:"default:0"`
	Furnishing string `gorm:"type:varchar(64);default:'Unfurnished'"`
	Possession string `gorm:"type:varchar(64);default:'Immediate'"`
	BuiltYear  *int

	// Location is the display string "<locality>, <city>".
	Location string `gorm:"type:varchar(255);not null"`
	Locality string `gorm:"type:varchar(128);not null"`
	City     string `gorm:"type:varchar(128);not null"`

	// Images holds stored file references served under /uploads.
	Images    datatypes.JSONSlice[string]
	VideoURLs datatypes.JSONSlice[string] `gorm:"column:video_urls"`
	Amenities datatypes.JSONSlice[string]

	Latitude  *float64
	Longitude *float64

	AgentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Agent   User      `gorm:"constraint:OnDelete:CASCADE"`

	// SubmittedBy is the broker name when the listing came in through one.
	SubmittedBy string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
