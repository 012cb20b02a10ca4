package category

import "time"

// Category represents a browsable section of the place directory
// (e.g. restaurants, sights, pharmacies).
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	IconURL     *string    `json:"icon_url"`
	ImageURL    *string    `json:"image_url"`
	IsFeatured  bool       `json:"is_featured"`
	IsBanner    bool       `json:"is_banner"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"` // soft-delete tracker
}

// Filter holds the parameters for a category listing.
type Filter struct {
	// FeaturedOnly restricts the listing to homepage-featured categories.
	FeaturedOnly bool
	// BannerOnly restricts the listing to banner-rotation categories.
	BannerOnly bool
}

// Global field names for validation
const (
	FieldName      = "name"
	FieldSlug      = "slug"
	FieldIconURL   = "icon_url"
	FieldImageURL  = "image_url"
	FieldSortOrder = "sort_order"
)
