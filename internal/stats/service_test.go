package stats

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/ctxutil"
)

type countingStore struct {
	mu             sync.Mutex
	inserted       []*UsageEvent
	insertErr      error
	categoryReport []*ReportRow
}

func (c *countingStore) InsertEvent(_ context.Context, event *UsageEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.insertErr != nil {
		return c.insertErr
	}
	c.inserted = append(c.inserted, event)
	return nil
}

func (c *countingStore) insertCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inserted)
}

func (c *countingStore) CategoryRangeReport(_ context.Context, _, _ string) ([]*ReportRow, error) {
	return c.categoryReport, nil
}

func (c *countingStore) PlaceRangeReport(_ context.Context, _, _ string) ([]*ReportRow, error) {
	return []*ReportRow{}, nil
}

func (c *countingStore) UpsertCategoryRollup(_ context.Context, _ *DailyCategoryView) error {
	return nil
}

func (c *countingStore) UpsertPlaceRollup(_ context.Context, _ *DailyPlaceView) error {
	return nil
}

func (c *countingStore) AggregateDay(_ context.Context, _ string) error {
	return nil
}

/*
TestService_RecordEvent_WithoutConsent verifies the privacy invariant:
without the consent flag nothing reaches the store, synchronously or
otherwise.
*/
func TestService_RecordEvent_WithoutConsent(t *testing.T) {
	store := &countingStore{}
	service := NewService(store, slog.Default())

	service.RecordEvent(context.Background(), EventPageView, nil, nil)
	service.RecordEvent(ctxutil.WithConsent(context.Background(), false), EventPlaceView, nil, nil)

	// No goroutine is ever spawned on the refusal path, so an immediate
	// assertion is race-free.
	assert.Zero(t, store.insertCount())
}

/*
TestService_RecordEvent_WithConsent verifies that a consented event is
persisted in the background.
*/
func TestService_RecordEvent_WithConsent(t *testing.T) {
	store := &countingStore{}
	service := NewService(store, slog.Default())

	consented := ctxutil.WithConsent(context.Background(), true)
	service.RecordEvent(consented, EventPageView, nil, nil)

	require.Eventually(t, func() bool {
		return store.insertCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, EventPageView, store.inserted[0].EventType)
}

/*
TestService_RecordEvent_UnknownType verifies that an unrecognized event
kind is dropped rather than stored.
*/
func TestService_RecordEvent_UnknownType(t *testing.T) {
	store := &countingStore{}
	service := NewService(store, slog.Default())

	consented := ctxutil.WithConsent(context.Background(), true)
	service.RecordEvent(consented, EventType("mouse_wiggle"), nil, nil)

	assert.Zero(t, store.insertCount())
}

/*
TestService_Record_SwallowsStoreFailure verifies that a failed insert is
logged and never propagated.
*/
func TestService_Record_SwallowsStoreFailure(t *testing.T) {
	store := &countingStore{insertErr: errors.New("connection refused")}
	service := NewService(store, slog.Default())

	assert.NotPanics(t, func() {
		service.record(context.Background(), &UsageEvent{EventType: EventPageView})
	})
}

/*
TestService_RangeReport_Validation covers the report parameter rules:
known kind, well-formed dates, and an ordered range.
*/
func TestService_RangeReport_Validation(t *testing.T) {
	service := NewService(&countingStore{}, slog.Default())

	testCases := []struct {
		name     string
		kind     string
		from, to string
		wantErr  bool
	}{
		{name: "valid category report", kind: ReportKindCategory, from: "2026-08-01", to: "2026-08-27"},
		{name: "single day range", kind: ReportKindPlace, from: "2026-08-27", to: "2026-08-27"},
		{name: "unknown kind", kind: "settlement", from: "2026-08-01", to: "2026-08-27", wantErr: true},
		{name: "malformed date", kind: ReportKindCategory, from: "2026/08/01", to: "2026-08-27", wantErr: true},
		{name: "inverted range", kind: ReportKindCategory, from: "2026-08-27", to: "2026-08-01", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.RangeReport(context.Background(), testCase.kind, testCase.from, testCase.to)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

/*
TestService_RangeReport_PreservesDailyRows verifies the report shape: the
daily rollup buckets come back as-is, one row per subject per day, never
summed into range totals.
*/
func TestService_RangeReport_PreservesDailyRows(t *testing.T) {
	store := &countingStore{categoryReport: []*ReportRow{
		{SubjectID: "cat-1", SubjectName: "Ettermek", Day: "2026-08-25", ViewCount: 12},
		{SubjectID: "cat-1", SubjectName: "Ettermek", Day: "2026-08-26", ViewCount: 7},
		{SubjectID: "cat-2", SubjectName: "Szallasok", Day: "2026-08-26", ViewCount: 3},
	}}
	service := NewService(store, slog.Default())

	report, err := service.RangeReport(context.Background(), ReportKindCategory, "2026-08-25", "2026-08-26")
	require.NoError(t, err)
	require.Len(t, report, 3)

	assert.Equal(t, "2026-08-25", report[0].Day)
	assert.Equal(t, "2026-08-26", report[1].Day)
	assert.Equal(t, report[0].SubjectID, report[1].SubjectID)
	assert.Equal(t, 12, report[0].ViewCount)
	assert.Equal(t, 7, report[1].ViewCount)
}

/*
TestService_AggregateDay_DefaultsToYesterday verifies the rollup binary's
convenience default.
*/
func TestService_AggregateDay_DefaultsToYesterday(t *testing.T) {
	service := NewService(&countingStore{}, slog.Default())

	day, err := service.AggregateDay(context.Background(), "")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, day)
}
