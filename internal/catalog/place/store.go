package place

import "context"

type Repository interface {
	ListPlaces(context context.Context, f Filter, limit, offset int) ([]*Place, int, error)
	GetPlace(context context.Context, id string) (*Place, error)
	GetPlaceBySlug(context context.Context, slug string) (*Place, error)
	FindByCategory(context context.Context, categoryID string) ([]*Place, error)
	FindByIDs(context context.Context, ids []string) ([]*Place, error)
	CreatePlace(context context.Context, p *Place) error
	UpdatePlace(context context.Context, p *Place) error
	DeletePlace(context context.Context, id string) error
}
