package favorite

import (
	"context"
	"log/slog"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/validate"
)

// PlaceFinder hydrates favorite identifiers into full places.
type PlaceFinder interface {
	FindByIDs(context context.Context, ids []string) ([]*place.Place, error)
}

type Service struct {
	repo   Repository
	places PlaceFinder
	logger *slog.Logger
}

func NewService(repo Repository, places PlaceFinder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		places: places,
		logger: logger,
	}
}

// ListIDs returns the user's bookmarked place identifiers, newest first.
// An anonymous caller gets an empty list.
func (service *Service) ListIDs(context context.Context, userID string) ([]string, error) {
	if userID == "" {
		return []string{}, nil
	}
	return service.repo.ListPlaceIDs(context, userID)
}

/*
List returns the user's favorites hydrated into full places, keeping the
newest-first bookmark order. Places that have since been removed from the
directory are silently skipped.
*/
func (service *Service) List(context context.Context, userID string) ([]*place.Place, error) {
	ids, err := service.ListIDs(context, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*place.Place{}, nil
	}

	found, err := service.places.FindByIDs(context, ids)
	if err != nil {
		return nil, err
	}

	// FindByIDs gives no order guarantee; restore the bookmark order.
	byID := make(map[string]*place.Place, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	ordered := make([]*place.Place, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// Add bookmarks a place. Adding twice is a no-op, and an anonymous caller
// is quietly ignored rather than rejected.
func (service *Service) Add(context context.Context, userID, placeID string) error {
	if userID == "" {
		return nil
	}

	validator := &validate.Validator{}
	validator.UUID("place_id", placeID)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Add(context, userID, placeID); err != nil {
		return err
	}

	service.logger.Info("favorite_added",
		slog.String("user_id", userID),
		slog.String("place_id", placeID),
	)
	return nil
}

// Remove drops a bookmark. Removing a place that was never bookmarked
// succeeds, and an anonymous caller is quietly ignored.
func (service *Service) Remove(context context.Context, userID, placeID string) error {
	if userID == "" {
		return nil
	}

	if err := service.repo.Remove(context, userID, placeID); err != nil {
		return err
	}

	service.logger.Info("favorite_removed",
		slog.String("user_id", userID),
		slog.String("place_id", placeID),
	)
	return nil
}
