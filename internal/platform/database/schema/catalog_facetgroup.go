package schema

// CatalogFacetGroupTable represents the 'catalog.facetgroup' table
type CatalogFacetGroupTable struct {
	Table     string
	Slug      string
	Name      string
	CreatedAt string
}

// CatalogFacetGroup is the schema definition for catalog.facetgroup
var CatalogFacetGroup = CatalogFacetGroupTable{
	Table:     "catalog.facetgroup",
	Slug:      "slug",
	Name:      "name",
	CreatedAt: "createdat",
}

func (t CatalogFacetGroupTable) Columns() []string {
	return []string{t.Slug, t.Name, t.CreatedAt}
}
