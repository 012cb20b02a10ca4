package category

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

func (service *Service) ListCategories(context context.Context, filter Filter) ([]*Category, error) {
	return service.repo.ListCategories(context, filter)
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.GetCategory(context, id)
}

func (service *Service) GetCategoryBySlug(context context.Context, categorySlug string) (*Category, error) {
	return service.repo.GetCategoryBySlug(context, categorySlug)
}

func (service *Service) CreateCategory(context context.Context, c *Category) error {
	c.Name = strings.TrimSpace(c.Name)

	// Derive the slug from the name when the client didn't provide one.
	if c.Slug == "" {
		c.Slug = slug.From(c.Name)
	}

	if err := service.validateCategory(c); err != nil {
		return err
	}

	if err := service.repo.CreateCategory(context, c); err != nil {
		return err
	}

	service.logger.Info("category_created",
		slog.String("category_id", c.ID),
		slog.String("slug", c.Slug),
	)
	return nil
}

func (service *Service) UpdateCategory(context context.Context, id string, c *Category) error {
	c.ID = id
	c.Name = strings.TrimSpace(c.Name)

	if c.Slug == "" {
		c.Slug = slug.From(c.Name)
	}

	if err := service.validateCategory(c); err != nil {
		return err
	}

	if err := service.repo.UpdateCategory(context, c); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.String("category_id", c.ID))
	return nil
}

func (service *Service) DeleteCategory(context context.Context, id string) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.String("category_id", id))
	return nil
}

func (service *Service) validateCategory(c *Category) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 120)
	validator.Slug(FieldSlug, c.Slug)
	validator.Range(FieldSortOrder, c.SortOrder, 0, 10000)

	if c.IconURL != nil {
		validator.URL(FieldIconURL, *c.IconURL)
	}
	if c.ImageURL != nil {
		validator.URL(FieldImageURL, *c.ImageURL)
	}

	return validator.Err()
}
