package facet

import "context"

type Repository interface {
	ListGroups(context context.Context) ([]*FacetGroup, error)
	GetGroup(context context.Context, slug string) (*FacetGroup, error)
	CreateGroup(context context.Context, group *FacetGroup) error
	DeleteGroup(context context.Context, slug string) error

	GroupsForCategory(context context.Context, categoryID string) ([]*FacetGroup, error)
	CategoriesForGroup(context context.Context, groupSlug string) ([]*CategorySummary, error)
	AllCategoryGroups(context context.Context) (map[string][]string, error)
	ReplaceCategoryGroups(context context.Context, categoryID string, groupSlugs []string) error
}
