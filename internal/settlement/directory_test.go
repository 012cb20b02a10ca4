package settlement

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(sourceURL string) *Directory {
	return NewDirectory(sourceURL, 2*time.Second, nil, slog.Default())
}

/*
TestDirectory_List_FallbackOnUnreachableSource verifies that a dead
upstream yields exactly the compiled-in fallback list and no error path.
*/
func TestDirectory_List_FallbackOnUnreachableSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	directory := newTestDirectory(server.URL)

	names := directory.List(context.Background())
	assert.Equal(t, fallbackSettlements(), names)
}

/*
TestDirectory_List_FallbackOnEmptyPayload verifies that a syntactically
valid but empty source response still falls back.
*/
func TestDirectory_List_FallbackOnEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	directory := newTestDirectory(server.URL)

	names := directory.List(context.Background())
	assert.Equal(t, fallbackSettlements(), names)
}

/*
TestDirectory_List_ArrayOfStrings verifies the simplest source shape with
whitespace trimming, duplicate removal and Hungarian ordering.
*/
func TestDirectory_List_ArrayOfStrings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte(`["Szeged", " Eger ", "Budapest", "Szeged", ""]`))
	}))
	defer server.Close()

	directory := newTestDirectory(server.URL)

	names := directory.List(context.Background())
	assert.Equal(t, []string{"Budapest", "Eger", "Szeged"}, names)
}

/*
TestDirectory_List_ArrayOfRecords verifies name extraction from record
payloads using the Hungarian field naming variants.
*/
func TestDirectory_List_ArrayOfRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte(`[
			{"telepules": "Pécs", "megye": "Baranya"},
			{"name": "Pápa"},
			{"irrelevant": true}
		]`))
	}))
	defer server.Close()

	directory := newTestDirectory(server.URL)

	names := directory.List(context.Background())
	assert.Equal(t, []string{"Pápa", "Pécs"}, names)
}

/*
TestDirectory_List_ObjectOfRecords verifies the keyed-object source shape.
*/
func TestDirectory_List_ObjectOfRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte(`{
			"5789": {"város": "Miskolc"},
			"1146": {"város": "Budapest"}
		}`))
	}))
	defer server.Close()

	directory := newTestDirectory(server.URL)

	names := directory.List(context.Background())
	assert.Equal(t, []string{"Budapest", "Miskolc"}, names)
}

/*
TestDirectory_List_MemoizesSuccessfulFetch verifies that a second call
within the revalidation window is served from memory.
*/
func TestDirectory_List_MemoizesSuccessfulFetch(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		hits++
		writer.Write([]byte(`["Eger"]`))
	}))
	defer server.Close()

	directory := newTestDirectory(server.URL)

	first := directory.List(context.Background())
	second := directory.List(context.Background())

	require.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}

/*
TestExtractNames_MalformedPayload verifies that unparseable bodies yield
nil instead of a partial result.
*/
func TestExtractNames_MalformedPayload(t *testing.T) {
	assert.Nil(t, extractNames([]byte(`not json at all`)))
	assert.Nil(t, extractNames([]byte(`42`)))
}
