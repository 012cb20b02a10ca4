package stats

import "context"

type Repository interface {
	InsertEvent(context context.Context, event *UsageEvent) error

	CategoryRangeReport(context context.Context, from, to string) ([]*ReportRow, error)
	PlaceRangeReport(context context.Context, from, to string) ([]*ReportRow, error)

	UpsertCategoryRollup(context context.Context, row *DailyCategoryView) error
	UpsertPlaceRollup(context context.Context, row *DailyPlaceView) error

	// AggregateDay recomputes both daily rollups for the given day
	// (YYYY-MM-DD, report timezone) from the raw event stream.
	AggregateDay(context context.Context, day string) error
}
