package schema

// CatalogCategoryFacetTable represents the 'catalog.categoryfacet' table
type CatalogCategoryFacetTable struct {
	Table      string
	CategoryID string
	GroupSlug  string
}

// CatalogCategoryFacet is the schema definition for catalog.categoryfacet
var CatalogCategoryFacet = CatalogCategoryFacetTable{
	Table:      "catalog.categoryfacet",
	CategoryID: "categoryid",
	GroupSlug:  "groupslug",
}
