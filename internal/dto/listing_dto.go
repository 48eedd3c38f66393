package dto

// ListingCreateRequest carries all listing fields except the owner, which
// is always taken from the authenticated caller.
type ListingCreateRequest struct {
	Title    string `json:"title" validate:"required"`
	Location string `json:"location" validate:"required"`
	Price    int    `json:"price" validate:"required"`
	Type     string `json:"type" validate:"required"` // rent/sale, stored as-is
	Rooms    int    `json:"rooms" validate:"required"`
	Sqm      int    `json:"sqm" validate:"required"`

	AC        bool `json:"ac"`
	Mamad     bool `json:"mamad"`
	Parking   bool `json:"parking"`
	Balcony   bool `json:"balcony"`
	Furnished bool `json:"furnished"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// ListingUpdateRequest is a partial update: only non-nil fields are
// applied. There is deliberately no owner field here.
type ListingUpdateRequest struct {
	Title    *string `json:"title"`
	Location *string `json:"location"`
	Price    *int    `json:"price"`
	Type     *string `json:"type"`
	Rooms    *int    `json:"rooms"`
	Sqm      *int    `json:"sqm"`

	AC        *bool `json:"ac"`
	Mamad     *bool `json:"mamad"`
	Parking   *bool `json:"parking"`
	Balcony   *bool `json:"balcony"`
	Furnished *bool `json:"furnished"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
}
