package models

import (
	"time"

	"gorm.io/datatypes"
)

// Listing is a property advertised for rent or sale. OwnerID is set from
// the authenticated creator and is immutable afterwards.
type Listing struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;index" json:"title"`
	Location string `gorm:"size:255;index" json:"location"`
	Price    int    `json:"price"`
	Type     string `gorm:"size:50" json:"type"` // "rent" or "sale"
	Rooms    int    `json:"rooms"`
	Sqm      int    `json:"sqm"`

	// Amenities
	AC        bool `gorm:"not null;default:false" json:"ac"`
	Mamad     bool `gorm:"not null;default:false" json:"mamad"`
	Parking   bool `gorm:"not null;default:false" json:"parking"`
	Balcony   bool `gorm:"not null;default:false" json:"balcony"`
	Furnished bool `gorm:"not null;default:false" json:"furnished"`

	// Location details
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Description string                      `gorm:"type:text" json:"description"`
	Images      datatypes.JSONSlice[string] `json:"images"`

	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
