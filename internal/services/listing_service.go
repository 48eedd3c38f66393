package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotOwner        = errors.New("not enough permissions")
)

type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// List returns listings ordered by ascending id so pagination is stable.
// There is no upper bound on limit.
func (s *ListingService) List(skip, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.db.Order("id ASC").Offset(skip).Limit(limit).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// ListOwned returns the caller's own listings with the same pagination.
func (s *ListingService) ListOwned(ownerID uint, skip, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.db.Where("owner_id = ?", ownerID).
		Order("id ASC").Offset(skip).Limit(limit).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list owned listings: %w", err)
	}
	return listings, nil
}

// Create persists a new listing. The owner is always the authenticated
// caller; any owner value in the request is ignored.
func (s *ListingService) Create(owner *models.User, req *dto.ListingCreateRequest) (*models.Listing, error) {
	listing := models.Listing{
		Title:       req.Title,
		Location:    req.Location,
		Price:       req.Price,
		Type:        req.Type,
		Rooms:       req.Rooms,
		Sqm:         req.Sqm,
		AC:          req.AC,
		Mamad:       req.Mamad,
		Parking:     req.Parking,
		Balcony:     req.Balcony,
		Furnished:   req.Furnished,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Description: req.Description,
		Images:      datatypes.NewJSONSlice(req.Images),
		OwnerID:     owner.ID,
	}

	if err := s.db.Create(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return &listing, nil
}

// Update merges the set fields of the patch into an existing listing.
// Only the owner may mutate; there is no optimistic locking, so two
// concurrent updates to the same row are last-commit-wins.
func (s *ListingService) Update(caller *models.User, id uint, req *dto.ListingUpdateRequest) (*models.Listing, error) {
	listing, err := s.findOwned(caller, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Rooms != nil {
		updates["rooms"] = *req.Rooms
	}
	if req.Sqm != nil {
		updates["sqm"] = *req.Sqm
	}
	if req.AC != nil {
		updates["ac"] = *req.AC
	}
	if req.Mamad != nil {
		updates["mamad"] = *req.Mamad
	}
	if req.Parking != nil {
		updates["parking"] = *req.Parking
	}
	if req.Balcony != nil {
		updates["balcony"] = *req.Balcony
	}
	if req.Furnished != nil {
		updates["furnished"] = *req.Furnished
	}
	if req.Lat != nil {
		updates["lat"] = *req.Lat
	}
	if req.Lng != nil {
		updates["lng"] = *req.Lng
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(*req.Images)
	}

	if len(updates) == 0 {
		return listing, nil
	}

	if err := s.db.Model(listing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	return listing, nil
}

// Delete removes an owned listing and returns its last-known state.
func (s *ListingService) Delete(caller *models.User, id uint) (*models.Listing, error) {
	listing, err := s.findOwned(caller, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to delete listing: %w", err)
	}

	return listing, nil
}

// findOwned checks existence before ownership so a missing id reports 404
// rather than leaking through a permission error.
func (s *ListingService) findOwned(caller *models.User, id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		return nil, ErrListingNotFound
	}

	if listing.OwnerID != caller.ID {
		return nil, ErrNotOwner
	}

	return &listing, nil
}
