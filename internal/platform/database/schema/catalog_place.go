package schema

// CatalogPlaceTable represents the 'catalog.place' table
type CatalogPlaceTable struct {
	Table       string
	ID          string
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Settlement  string
	Address     string
	Lat         string
	Lng         string
	Phone       string
	Website     string
	ImageURL    string
	RatingAvg   string
	RatingCount string
	IsOpen      string
	IsPremium   string
	PriceLevel  string
	IsActive    string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CatalogPlace is the schema definition for catalog.place
var CatalogPlace = CatalogPlaceTable{
	Table:       "catalog.place",
	ID:          "id",
	CategoryID:  "categoryid",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	Settlement:  "settlement",
	Address:     "address",
	Lat:         "lat",
	Lng:         "lng",
	Phone:       "phone",
	Website:     "website",
	ImageURL:    "imageurl",
	RatingAvg:   "ratingavg",
	RatingCount: "ratingcount",
	IsOpen:      "isopen",
	IsPremium:   "ispremium",
	PriceLevel:  "pricelevel",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t CatalogPlaceTable) Columns() []string {
	return []string{
		t.ID, t.CategoryID, t.Name, t.Slug, t.Description, t.Settlement,
		t.Address, t.Lat, t.Lng, t.Phone, t.Website, t.ImageURL,
		t.RatingAvg, t.RatingCount, t.IsOpen, t.IsPremium, t.PriceLevel,
		t.IsActive, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
