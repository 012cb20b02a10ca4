package place

import (
	"context"
	"log/slog"
	"strings"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/validate"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListPlaces(context context.Context, filter Filter, limit, offset int) ([]*Place, int, error) {
	return service.repo.ListPlaces(context, filter, limit, offset)
}

func (service *Service) GetPlace(context context.Context, id string) (*Place, error) {
	return service.repo.GetPlace(context, id)
}

func (service *Service) GetPlaceBySlug(context context.Context, placeSlug string) (*Place, error) {
	return service.repo.GetPlaceBySlug(context, placeSlug)
}

func (service *Service) FindByCategory(context context.Context, categoryID string) ([]*Place, error) {
	return service.repo.FindByCategory(context, categoryID)
}

func (service *Service) FindByIDs(context context.Context, ids []string) ([]*Place, error) {
	if len(ids) == 0 {
		return []*Place{}, nil
	}
	return service.repo.FindByIDs(context, ids)
}

func (service *Service) CreatePlace(context context.Context, p *Place) error {
	p.Name = strings.TrimSpace(p.Name)

	// Derive the slug from the name when the client didn't provide one.
	if p.Slug == "" {
		p.Slug = slug.From(p.Name)
	}

	if err := service.validatePlace(p); err != nil {
		return err
	}

	if err := service.repo.CreatePlace(context, p); err != nil {
		return err
	}

	service.logger.Info("place_created",
		slog.String("place_id", p.ID),
		slog.String("slug", p.Slug),
	)
	return nil
}

func (service *Service) UpdatePlace(context context.Context, id string, p *Place) error {
	p.ID = id
	p.Name = strings.TrimSpace(p.Name)

	if p.Slug == "" {
		p.Slug = slug.From(p.Name)
	}

	if err := service.validatePlace(p); err != nil {
		return err
	}

	if err := service.repo.UpdatePlace(context, p); err != nil {
		return err
	}

	service.logger.Info("place_updated", slog.String("place_id", p.ID))
	return nil
}

func (service *Service) DeletePlace(context context.Context, id string) error {
	if err := service.repo.DeletePlace(context, id); err != nil {
		return err
	}

	service.logger.Warn("place_deleted", slog.String("place_id", id))
	return nil
}

func (service *Service) validatePlace(p *Place) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, 200)
	validator.Slug(FieldSlug, p.Slug)
	validator.UUID(FieldCategoryID, p.CategoryID)
	validator.Required(FieldSettlement, p.Settlement).MaxLen(FieldSettlement, p.Settlement, 100)
	validator.RangeFloat(FieldLat, p.Coordinate.Lat, -90, 90)
	validator.RangeFloat(FieldLng, p.Coordinate.Lng, -180, 180)
	validator.RangeFloat(FieldRating, p.Rating, 0, 5)
	validator.Range(FieldPriceLevel, p.PriceLevel, 1, 4)

	if p.Website != nil {
		validator.URL(FieldWebsite, *p.Website)
	}
	if p.ImageURL != nil {
		validator.URL(FieldImageURL, *p.ImageURL)
	}

	return validator.Err()
}
