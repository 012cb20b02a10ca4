package schema

// CatalogCategoryTable represents the 'catalog.category' table
type CatalogCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	IconURL     string
	ImageURL    string
	IsFeatured  string
	IsBanner    string
	SortOrder   string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogCategoryTable{
	Table:       "catalog.category",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	IconURL:     "iconurl",
	ImageURL:    "imageurl",
	IsFeatured:  "isfeatured",
	IsBanner:    "isbanner",
	SortOrder:   "sortorder",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t CatalogCategoryTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Description, t.IconURL, t.ImageURL,
		t.IsFeatured, t.IsBanner, t.SortOrder, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
