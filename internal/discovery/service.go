package discovery

import (
	"context"
	"errors"
	"log/slog"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/category"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/facet"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/apperr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/dberr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/stats"
)

// CategoryResolver resolves category slugs to full categories.
type CategoryResolver interface {
	GetCategoryBySlug(context context.Context, slug string) (*category.Category, error)
}

// GroupResolver expands a facet group into its member categories.
type GroupResolver interface {
	CategoriesForGroup(context context.Context, groupSlug string) ([]*facet.CategorySummary, error)
}

// PlaceFinder loads the candidate pool for ranking.
type PlaceFinder interface {
	FindByCategory(context context.Context, categoryID string) ([]*place.Place, error)
}

// Recorder ingests usage events without ever failing the request.
type Recorder interface {
	RecordEvent(context context.Context, eventType stats.EventType, categoryID, placeID *string)
}

type Service struct {
	categories CategoryResolver
	groups     GroupResolver
	places     PlaceFinder
	recorder   Recorder
	logger     *slog.Logger
}

func NewService(categories CategoryResolver, groups GroupResolver, places PlaceFinder, recorder Recorder, logger *slog.Logger) *Service {
	return &Service{
		categories: categories,
		groups:     groups,
		places:     places,
		recorder:   recorder,
		logger:     logger,
	}
}

/*
Discover resolves the candidate pool for the filter, ranks it and records a
page view for usage accounting.

A slug that doesn't resolve to any category or facet group yields an empty
result, not an error: stale bookmarks and removed sections degrade to an
empty page rather than a failure.
*/
func (service *Service) Discover(context context.Context, filter Filter) ([]Result, error) {
	candidates, categoryID, err := service.candidates(context, filter)
	if err != nil {
		return nil, err
	}

	results := Rank(candidates, filter)

	service.recorder.RecordEvent(context, stats.EventPageView, categoryID, nil)

	service.logger.Debug("discovery_ranked",
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)),
	)
	return results, nil
}

func (service *Service) candidates(context context.Context, filter Filter) ([]*place.Place, *string, error) {
	switch {
	case filter.CategorySlug != "":
		resolved, err := service.categories.GetCategoryBySlug(context, filter.CategorySlug)
		if errors.Is(err, dberr.ErrNotFound) {
			return []*place.Place{}, nil, nil
		}
		if err != nil {
			return nil, nil, err
		}

		candidates, err := service.places.FindByCategory(context, resolved.ID)
		if err != nil {
			return nil, nil, err
		}
		return candidates, &resolved.ID, nil

	case filter.FacetGroupSlug != "":
		members, err := service.groups.CategoriesForGroup(context, filter.FacetGroupSlug)
		if err != nil {
			return nil, nil, err
		}

		// Each place belongs to exactly one category, but guard against
		// duplicate junction rows anyway.
		seen := make(map[string]struct{})
		candidates := make([]*place.Place, 0)
		for _, member := range members {
			found, err := service.places.FindByCategory(context, member.ID)
			if err != nil {
				return nil, nil, err
			}
			for _, candidate := range found {
				if _, ok := seen[candidate.ID]; ok {
					continue
				}
				seen[candidate.ID] = struct{}{}
				candidates = append(candidates, candidate)
			}
		}
		return candidates, nil, nil

	default:
		return nil, nil, apperr.ValidationError("Either category or group must be provided")
	}
}
