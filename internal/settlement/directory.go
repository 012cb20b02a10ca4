package settlement

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/constants"
)

// memoTTL bounds how long a process serves its in-memory copy before
// revalidating against Redis or the upstream source.
const memoTTL = 15 * time.Minute

// maxSourceBody caps the upstream payload; the national settlement
// registry is well under a megabyte.
const maxSourceBody = 4 << 20

// recordNameKeys are the accepted name fields when the upstream source
// returns records instead of plain strings. Hungarian exports are
// inconsistent about casing and accents, so all observed variants are tried.
var recordNameKeys = []string{"name", "Name", "telepules", "település", "Telepules", "varos", "város", "city"}

/*
Directory serves the list of known settlement names for search dropdowns.

Lookup order: in-process memo, shared Redis cache, upstream HTTP source,
and finally a compiled-in fallback list. Every layer may fail; the caller
always receives a usable, Hungarian-collated list and never an error.
*/
type Directory struct {
	sourceURL string
	client    *http.Client
	cache     *redis.Client
	logger    *slog.Logger

	mu        sync.Mutex
	memo      []string
	memoUntil time.Time
}

func NewDirectory(sourceURL string, fetchTimeout time.Duration, cache *redis.Client, logger *slog.Logger) *Directory {
	return &Directory{
		sourceURL: sourceURL,
		client:    &http.Client{Timeout: fetchTimeout},
		cache:     cache,
		logger:    logger,
	}
}

// List returns every known settlement name, sorted by Hungarian collation.
func (directory *Directory) List(context context.Context) []string {
	directory.mu.Lock()
	if time.Now().Before(directory.memoUntil) && len(directory.memo) > 0 {
		memo := directory.memo
		directory.mu.Unlock()
		return memo
	}
	directory.mu.Unlock()

	if names := directory.fromCache(context); len(names) > 0 {
		directory.remember(names)
		return names
	}

	if names := directory.fromSource(context); len(names) > 0 {
		directory.storeCache(context, names)
		directory.remember(names)
		return names
	}

	// The fallback is deliberately not memoized so the next request
	// retries the upstream layers.
	directory.logger.Warn("settlement_fallback_served")
	return fallbackSettlements()
}

func (directory *Directory) remember(names []string) {
	directory.mu.Lock()
	directory.memo = names
	directory.memoUntil = time.Now().Add(memoTTL)
	directory.mu.Unlock()
}

func (directory *Directory) fromCache(context context.Context) []string {
	if directory.cache == nil {
		return nil
	}

	payload, err := directory.cache.Get(context, constants.RedisKeySettlementList).Result()
	if err != nil {
		if err != redis.Nil {
			directory.logger.Warn("settlement_cache_read_failed", slog.String("error", err.Error()))
		}
		return nil
	}

	var names []string
	if err := json.Unmarshal([]byte(payload), &names); err != nil {
		directory.logger.Warn("settlement_cache_corrupt", slog.String("error", err.Error()))
		return nil
	}
	return names
}

func (directory *Directory) storeCache(context context.Context, names []string) {
	if directory.cache == nil {
		return
	}

	payload, err := json.Marshal(names)
	if err != nil {
		return
	}

	if err := directory.cache.Set(context, constants.RedisKeySettlementList, payload, constants.SettlementCacheTTL).Err(); err != nil {
		directory.logger.Warn("settlement_cache_write_failed", slog.String("error", err.Error()))
	}
}

func (directory *Directory) fromSource(context context.Context) []string {
	if directory.sourceURL == "" {
		return nil
	}

	request, err := http.NewRequestWithContext(context, http.MethodGet, directory.sourceURL, nil)
	if err != nil {
		directory.logger.Warn("settlement_source_request_failed", slog.String("error", err.Error()))
		return nil
	}

	response, err := directory.client.Do(request)
	if err != nil {
		directory.logger.Warn("settlement_source_unreachable", slog.String("error", err.Error()))
		return nil
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		directory.logger.Warn("settlement_source_bad_status", slog.Int("status", response.StatusCode))
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxSourceBody))
	if err != nil {
		directory.logger.Warn("settlement_source_read_failed", slog.String("error", err.Error()))
		return nil
	}

	names := extractNames(body)
	if len(names) == 0 {
		directory.logger.Warn("settlement_source_empty")
		return nil
	}

	sortHungarian(names)
	return names
}

/*
extractNames pulls settlement names out of an upstream JSON payload.

Two shapes are understood: a top-level array (of strings or of records)
and a top-level object whose values are strings or records. Anything else
yields nil, pushing the caller to the fallback list.
*/
func extractNames(body []byte) []string {
	var asArray []any
	if err := json.Unmarshal(body, &asArray); err == nil {
		return collectNames(asArray)
	}

	var asObject map[string]any
	if err := json.Unmarshal(body, &asObject); err == nil {
		values := make([]any, 0, len(asObject))
		for _, value := range asObject {
			values = append(values, value)
		}
		return collectNames(values)
	}

	return nil
}

func collectNames(items []any) []string {
	// Case-sensitive dedupe: "Eger" and "EGER" are kept distinct on
	// purpose, the source is authoritative about casing.
	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))

	appendName := func(raw string) {
		name := strings.TrimSpace(raw)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, item := range items {
		switch value := item.(type) {
		case string:
			appendName(value)
		case map[string]any:
			for _, key := range recordNameKeys {
				if raw, ok := value[key].(string); ok {
					appendName(raw)
					break
				}
			}
		}
	}

	return names
}

func sortHungarian(names []string) {
	collate.New(language.Hungarian).SortStrings(names)
}
