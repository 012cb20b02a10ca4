package facet

import (
	"context"
	"log/slog"
	"strings"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/validate"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/slice"
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

func (service *Service) ListGroups(context context.Context) ([]*FacetGroup, error) {
	return service.repo.ListGroups(context)
}

func (service *Service) GetGroup(context context.Context, groupSlug string) (*FacetGroup, error) {
	return service.repo.GetGroup(context, groupSlug)
}

func (service *Service) CreateGroup(context context.Context, group *FacetGroup) error {
	group.Name = strings.TrimSpace(group.Name)
	if group.Slug == "" {
		group.Slug = slug.From(group.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, group.Name).MaxLen(FieldName, group.Name, 120)
	validator.Slug(FieldSlug, group.Slug)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateGroup(context, group); err != nil {
		return err
	}

	service.logger.Info("facet_group_created", slog.String("slug", group.Slug))
	return nil
}

func (service *Service) DeleteGroup(context context.Context, groupSlug string) error {
	if err := service.repo.DeleteGroup(context, groupSlug); err != nil {
		return err
	}

	service.logger.Warn("facet_group_deleted", slog.String("slug", groupSlug))
	return nil
}

func (service *Service) GroupsForCategory(context context.Context, categoryID string) ([]*FacetGroup, error) {
	return service.repo.GroupsForCategory(context, categoryID)
}

func (service *Service) CategoriesForGroup(context context.Context, groupSlug string) ([]*CategorySummary, error) {
	return service.repo.CategoriesForGroup(context, groupSlug)
}

// AllCategoryGroups returns the full category-to-group mapping keyed by
// category identifier. Categories with no memberships are absent.
func (service *Service) AllCategoryGroups(context context.Context) (map[string][]string, error) {
	return service.repo.AllCategoryGroups(context)
}

/*
Replace swaps a category's complete facet membership for the given set.

Duplicates are collapsed (first occurrence wins) and an empty set clears
every membership. The write runs inside a single transaction, so a partial
failure leaves the previous memberships intact and is surfaced to the caller.
*/
func (service *Service) Replace(context context.Context, categoryID string, groupSlugs []string) error {
	validator := &validate.Validator{}
	validator.UUID("category_id", categoryID)
	for _, groupSlug := range groupSlugs {
		validator.Slug(FieldSlug, groupSlug)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	deduped := slice.Unique(groupSlugs)

	if err := service.repo.ReplaceCategoryGroups(context, categoryID, deduped); err != nil {
		return err
	}

	service.logger.Info("facet_membership_replaced",
		slog.String("category_id", categoryID),
		slog.Int("group_count", len(deduped)),
	)
	return nil
}
