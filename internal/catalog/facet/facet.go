package facet

import "time"

// FacetGroup is a cross-cutting grouping a category can belong to,
// such as "kedvencek" or "latnivalok". Groups are identified by slug.
type FacetGroup struct {
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySummary is the compact category projection returned when
// resolving a facet group to its member categories.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Global field names for validation
const (
	FieldSlug = "slug"
	FieldName = "name"
)
