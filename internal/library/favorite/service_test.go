package favorite_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/library/favorite"
)

const (
	testUserID  = "0190aaaa-bbbb-7ccc-8ddd-eeeeffff0001"
	testPlaceID = "0190aaaa-bbbb-7ccc-8ddd-eeeeffff0002"
)

// fakeStore mimics the idempotent postgres behaviour in memory: repeated
// adds and absent removes both succeed silently.
type fakeStore struct {
	bookmarks map[string][]string
	addCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{bookmarks: make(map[string][]string)}
}

func (f *fakeStore) ListPlaceIDs(_ context.Context, userID string) ([]string, error) {
	// Stored oldest-first; serve newest-first like the real query.
	stored := f.bookmarks[userID]
	ids := make([]string, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		ids = append(ids, stored[i])
	}
	return ids, nil
}

func (f *fakeStore) Add(_ context.Context, userID, placeID string) error {
	f.addCalls++
	for _, existing := range f.bookmarks[userID] {
		if existing == placeID {
			return nil
		}
	}
	f.bookmarks[userID] = append(f.bookmarks[userID], placeID)
	return nil
}

func (f *fakeStore) Remove(_ context.Context, userID, placeID string) error {
	stored := f.bookmarks[userID]
	for i, existing := range stored {
		if existing == placeID {
			f.bookmarks[userID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePlaceFinder struct {
	places map[string]*place.Place
}

func (f *fakePlaceFinder) FindByIDs(_ context.Context, ids []string) ([]*place.Place, error) {
	// Deliberately returns matches in arbitrary (map) order.
	found := make([]*place.Place, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for id, p := range f.places {
		for _, wanted := range ids {
			if id == wanted {
				if _, ok := seen[id]; !ok {
					seen[id] = struct{}{}
					found = append(found, p)
				}
			}
		}
	}
	return found, nil
}

/*
TestService_Add_Idempotent verifies that bookmarking the same place twice
succeeds and leaves a single entry.
*/
func TestService_Add_Idempotent(t *testing.T) {
	store := newFakeStore()
	service := favorite.NewService(store, &fakePlaceFinder{}, slog.Default())

	require.NoError(t, service.Add(context.Background(), testUserID, testPlaceID))
	require.NoError(t, service.Add(context.Background(), testUserID, testPlaceID))

	ids, err := service.ListIDs(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, []string{testPlaceID}, ids)
}

/*
TestService_Remove_Idempotent verifies that removing an absent bookmark is
a silent success.
*/
func TestService_Remove_Idempotent(t *testing.T) {
	store := newFakeStore()
	service := favorite.NewService(store, &fakePlaceFinder{}, slog.Default())

	require.NoError(t, service.Remove(context.Background(), testUserID, testPlaceID))
}

/*
TestService_AnonymousCallers verifies the quiet path for visitors without
an account: empty lists and no store traffic at all.
*/
func TestService_AnonymousCallers(t *testing.T) {
	store := newFakeStore()
	service := favorite.NewService(store, &fakePlaceFinder{}, slog.Default())

	ids, err := service.ListIDs(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, service.Add(context.Background(), "", testPlaceID))
	require.NoError(t, service.Remove(context.Background(), "", testPlaceID))
	assert.Zero(t, store.addCalls)
}

/*
TestService_List_PreservesBookmarkOrder verifies that hydration restores
the newest-first bookmark order even though the finder shuffles results,
and that vanished places are skipped.
*/
func TestService_List_PreservesBookmarkOrder(t *testing.T) {
	placeA := "0190aaaa-bbbb-7ccc-8ddd-eeeeffff00a1"
	placeB := "0190aaaa-bbbb-7ccc-8ddd-eeeeffff00b2"
	placeGone := "0190aaaa-bbbb-7ccc-8ddd-eeeeffff00c3"

	store := newFakeStore()
	finder := &fakePlaceFinder{places: map[string]*place.Place{
		placeA: {ID: placeA, Name: "Egri Var"},
		placeB: {ID: placeB, Name: "Dobo Ter"},
	}}
	service := favorite.NewService(store, finder, slog.Default())

	require.NoError(t, service.Add(context.Background(), testUserID, placeA))
	require.NoError(t, service.Add(context.Background(), testUserID, placeB))
	require.NoError(t, service.Add(context.Background(), testUserID, placeGone)) // since deleted

	places, err := service.List(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, places, 2)
	assert.Equal(t, placeB, places[0].ID)
	assert.Equal(t, placeA, places[1].ID)
}
