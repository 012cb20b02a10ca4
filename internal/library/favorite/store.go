package favorite

import "context"

type Repository interface {
	// ListPlaceIDs returns the user's bookmarked place identifiers,
	// most recently added first.
	ListPlaceIDs(context context.Context, userID string) ([]string, error)
	Add(context context.Context, userID, placeID string) error
	Remove(context context.Context, userID, placeID string) error
}
