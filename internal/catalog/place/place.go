package place

import (
	"time"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/geo"
)

// DefaultDisplayRating is shown for places that have not collected any
// reviews yet. It is a presentation convention, NOT a stored average:
// aggregation code must always branch on RatingCount, never on Rating alone.
const DefaultDisplayRating = 4.5

// Place represents a single entry of the directory: a restaurant, lodging,
// pharmacy, sight or event venue.
type Place struct {
	ID          string         `json:"id"`
	CategoryID  string         `json:"category_id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description"`
	Settlement  string         `json:"settlement"`
	Address     *string        `json:"address"`
	Coordinate  geo.Coordinate `json:"coordinate"`
	Phone       *string        `json:"phone"`
	Website     *string        `json:"website"`
	ImageURL    *string        `json:"image_url"`

	// Rating is the stored average on a 0-5 scale with one decimal.
	// When RatingCount is zero the stored value is meaningless; use
	// [Place.DisplayRating] on presentation paths.
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`

	IsOpen     bool `json:"is_open"`
	IsPremium  bool `json:"is_premium"`
	PriceLevel int  `json:"price_level"`

	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // soft-delete tracker
}

// DisplayRating returns the rating to show to visitors.
// Unrated places get [DefaultDisplayRating] instead of the stored zero value.
func (p *Place) DisplayRating() float64 {
	if p.RatingCount == 0 {
		return DefaultDisplayRating
	}
	return p.Rating
}

// Filter holds the parameters for a paginated place search.
type Filter struct {
	// Query matches name and description case-insensitively.
	Query string
	// CategoryID restricts to a single category.
	CategoryID string
	// Settlement restricts to an exact settlement name.
	Settlement string
}

// Global field names for validation
const (
	FieldName       = "name"
	FieldSlug       = "slug"
	FieldCategoryID = "category_id"
	FieldSettlement = "settlement"
	FieldLat        = "lat"
	FieldLng        = "lng"
	FieldWebsite    = "website"
	FieldImageURL   = "image_url"
	FieldRating     = "rating"
	FieldPriceLevel = "price_level"
)
