package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/constants"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/database/schema"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/dberr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) InsertEvent(context context.Context, event *UsageEvent) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`,
		schema.StatsUsageEvent.Table,
		schema.StatsUsageEvent.ID, schema.StatsUsageEvent.EventType, schema.StatsUsageEvent.UserID,
		schema.StatsUsageEvent.CategoryID, schema.StatsUsageEvent.PlaceID, schema.StatsUsageEvent.OccurredAt,
	)

	_, err := repository.db.Exec(context, query,
		uuidv7.New(), string(event.EventType), event.UserID, event.CategoryID, event.PlaceID,
	)
	return dberr.Wrap(err, "insert_usage_event")
}

// CategoryRangeReport returns the daily category rollup rows of an inclusive
// range, one row per category per day, joined to the category's current name.
// Soft-deleted categories stay in the report; their history is still
// meaningful.
func (repository *PostgresRepository) CategoryRangeReport(context context.Context, from, to string) ([]*ReportRow, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, v.%s::text AS day, v.%s
		FROM %s v
		JOIN %s c ON c.%s = v.%s
		WHERE v.%s BETWEEN $1::date AND $2::date
		ORDER BY day ASC, v.%s DESC, c.%s ASC
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name,
		schema.StatsDailyCategoryView.Day, schema.StatsDailyCategoryView.ViewCount,
		schema.StatsDailyCategoryView.Table,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID, schema.StatsDailyCategoryView.CategoryID,
		schema.StatsDailyCategoryView.Day,
		schema.StatsDailyCategoryView.ViewCount, schema.CatalogCategory.Name,
	)

	rows, err := repository.db.Query(context, query, from, to)
	if err != nil {
		return nil, dberr.Wrap(err, "category_range_report")
	}
	defer rows.Close()

	report := make([]*ReportRow, 0)
	for rows.Next() {
		row := &ReportRow{}
		if err := rows.Scan(&row.SubjectID, &row.SubjectName, &row.Day, &row.ViewCount); err != nil {
			return nil, dberr.Wrap(err, "scan_report_row")
		}
		report = append(report, row)
	}

	return report, nil
}

func (repository *PostgresRepository) PlaceRangeReport(context context.Context, from, to string) ([]*ReportRow, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, v.%s::text AS day, v.%s, v.%s, v.%s
		FROM %s v
		JOIN %s p ON p.%s = v.%s
		WHERE v.%s BETWEEN $1::date AND $2::date
		ORDER BY day ASC, v.%s DESC, p.%s ASC
	`,
		schema.CatalogPlace.ID, schema.CatalogPlace.Name,
		schema.StatsDailyPlaceView.Day,
		schema.StatsDailyPlaceView.ViewCount,
		schema.StatsDailyPlaceView.ClickCount,
		schema.StatsDailyPlaceView.DirectionCount,
		schema.StatsDailyPlaceView.Table,
		schema.CatalogPlace.Table, schema.CatalogPlace.ID, schema.StatsDailyPlaceView.PlaceID,
		schema.StatsDailyPlaceView.Day,
		schema.StatsDailyPlaceView.ViewCount, schema.CatalogPlace.Name,
	)

	rows, err := repository.db.Query(context, query, from, to)
	if err != nil {
		return nil, dberr.Wrap(err, "place_range_report")
	}
	defer rows.Close()

	report := make([]*ReportRow, 0)
	for rows.Next() {
		row := &ReportRow{}
		if err := rows.Scan(&row.SubjectID, &row.SubjectName, &row.Day, &row.ViewCount, &row.ClickCount, &row.DirectionCount); err != nil {
			return nil, dberr.Wrap(err, "scan_report_row")
		}
		report = append(report, row)
	}

	return report, nil
}

func (repository *PostgresRepository) UpsertCategoryRollup(context context.Context, row *DailyCategoryView) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1::date, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.StatsDailyCategoryView.Table,
		schema.StatsDailyCategoryView.Day, schema.StatsDailyCategoryView.CategoryID, schema.StatsDailyCategoryView.ViewCount,
		schema.StatsDailyCategoryView.Day, schema.StatsDailyCategoryView.CategoryID,
		schema.StatsDailyCategoryView.ViewCount, schema.StatsDailyCategoryView.ViewCount,
	)

	_, err := repository.db.Exec(context, query, row.Day, row.CategoryID, row.ViewCount)
	return dberr.Wrap(err, "upsert_category_rollup")
}

func (repository *PostgresRepository) UpsertPlaceRollup(context context.Context, row *DailyPlaceView) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1::date, $2, $3, $4, $5)
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.StatsDailyPlaceView.Table,
		schema.StatsDailyPlaceView.Day, schema.StatsDailyPlaceView.PlaceID,
		schema.StatsDailyPlaceView.ViewCount, schema.StatsDailyPlaceView.ClickCount, schema.StatsDailyPlaceView.DirectionCount,
		schema.StatsDailyPlaceView.Day, schema.StatsDailyPlaceView.PlaceID,
		schema.StatsDailyPlaceView.ViewCount, schema.StatsDailyPlaceView.ViewCount,
		schema.StatsDailyPlaceView.ClickCount, schema.StatsDailyPlaceView.ClickCount,
		schema.StatsDailyPlaceView.DirectionCount, schema.StatsDailyPlaceView.DirectionCount,
	)

	_, err := repository.db.Exec(context, query,
		row.Day, row.PlaceID, row.ViewCount, row.ClickCount, row.DirectionCount,
	)
	return dberr.Wrap(err, "upsert_place_rollup")
}

/*
AggregateDay recomputes both rollup tables for one calendar day from the
raw event stream, inside a single transaction.

Events are bucketed into calendar days in the report timezone, not UTC, so
a rollup day matches what Hungarian visitors experienced as "yesterday".
The INSERT ... SELECT ... ON CONFLICT form makes reruns safe: aggregating
the same day twice simply overwrites the previous totals.
*/
func (repository *PostgresRepository) AggregateDay(context context.Context, day string) error {

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_aggregate_day")
	}
	// Rollback is a no-op after a successful commit.
	defer transaction.Rollback(context)

	categoryQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		SELECT $1::date, e.%s, COUNT(*)
		FROM %s e
		WHERE e.%s IS NOT NULL
		  AND e.%s = '%s'
		  AND (e.%s AT TIME ZONE '%s')::date = $1::date
		GROUP BY e.%s
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.StatsDailyCategoryView.Table,
		schema.StatsDailyCategoryView.Day, schema.StatsDailyCategoryView.CategoryID, schema.StatsDailyCategoryView.ViewCount,
		schema.StatsUsageEvent.CategoryID,
		schema.StatsUsageEvent.Table,
		schema.StatsUsageEvent.CategoryID,
		schema.StatsUsageEvent.EventType, EventPageView,
		schema.StatsUsageEvent.OccurredAt, constants.ReportTimezone,
		schema.StatsUsageEvent.CategoryID,
		schema.StatsDailyCategoryView.Day, schema.StatsDailyCategoryView.CategoryID,
		schema.StatsDailyCategoryView.ViewCount, schema.StatsDailyCategoryView.ViewCount,
	)

	if _, err := transaction.Exec(context, categoryQuery, day); err != nil {
		return dberr.Wrap(err, "aggregate_category_day")
	}

	placeQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		SELECT $1::date, e.%s,
		       COUNT(*) FILTER (WHERE e.%s = '%s'),
		       COUNT(*) FILTER (WHERE e.%s = '%s'),
		       COUNT(*) FILTER (WHERE e.%s = '%s')
		FROM %s e
		WHERE e.%s IS NOT NULL
		  AND (e.%s AT TIME ZONE '%s')::date = $1::date
		GROUP BY e.%s
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.StatsDailyPlaceView.Table,
		schema.StatsDailyPlaceView.Day, schema.StatsDailyPlaceView.PlaceID,
		schema.StatsDailyPlaceView.ViewCount, schema.StatsDailyPlaceView.ClickCount, schema.StatsDailyPlaceView.DirectionCount,
		schema.StatsUsageEvent.PlaceID,
		schema.StatsUsageEvent.EventType, EventPlaceView,
		schema.StatsUsageEvent.EventType, EventPlaceClick,
		schema.StatsUsageEvent.EventType, EventDirectionClick,
		schema.StatsUsageEvent.Table,
		schema.StatsUsageEvent.PlaceID,
		schema.StatsUsageEvent.OccurredAt, constants.ReportTimezone,
		schema.StatsUsageEvent.PlaceID,
		schema.StatsDailyPlaceView.Day, schema.StatsDailyPlaceView.PlaceID,
		schema.StatsDailyPlaceView.ViewCount, schema.StatsDailyPlaceView.ViewCount,
		schema.StatsDailyPlaceView.ClickCount, schema.StatsDailyPlaceView.ClickCount,
		schema.StatsDailyPlaceView.DirectionCount, schema.StatsDailyPlaceView.DirectionCount,
	)

	if _, err := transaction.Exec(context, placeQuery, day); err != nil {
		return dberr.Wrap(err, "aggregate_place_day")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_aggregate_day")
	}
	return nil
}
