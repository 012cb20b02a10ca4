package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/apperr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/constants"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/ctxutil"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/validate"
)

// recordTimeout bounds the background insert so a slow database can't
// leak goroutines indefinitely.
const recordTimeout = 5 * time.Second

const dayLayout = "2006-01-02"

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

/*
RecordEvent ingests one usage event, fire-and-forget.

Consent gates everything: without the consent flag on the context the call
returns immediately and nothing is stored, not even an anonymized row. The
actual insert runs on a detached context in the background; failures are
logged and never reach the visitor-facing request.
*/
func (service *Service) RecordEvent(requestContext context.Context, eventType EventType, categoryID, placeID *string) {
	if !ctxutil.HasConsent(requestContext) {
		return
	}

	if !eventType.Valid() {
		service.logger.Warn("usage_event_unknown_type", slog.String("event_type", string(eventType)))
		return
	}

	var userID *string
	if claims := ctxutil.GetAuthUser(requestContext); claims != nil {
		userID = &claims.UserID
	}

	event := &UsageEvent{
		EventType:  eventType,
		UserID:     userID,
		CategoryID: categoryID,
		PlaceID:    placeID,
	}

	// Detach from the request lifecycle so the insert survives the
	// response being written.
	background := context.WithoutCancel(requestContext)

	go func() {
		detached, cancel := context.WithTimeout(background, recordTimeout)
		defer cancel()

		service.record(detached, event)
	}()
}

// record performs the synchronous insert behind [Service.RecordEvent].
func (service *Service) record(context context.Context, event *UsageEvent) {
	if err := service.repo.InsertEvent(context, event); err != nil {
		service.logger.Error("usage_event_insert_failed",
			slog.String("event_type", string(event.EventType)),
			slog.String("error", err.Error()),
		)
	}
}

/*
RangeReport returns the daily rollup rows of an inclusive date range,
one row per subject per calendar day, joined to the subjects' current
names.

Kind selects the subject: [ReportKindCategory] carries page views per
category, [ReportKindPlace] carries views, clicks and direction requests
per place. Dates are calendar days in the report timezone.
*/
func (service *Service) RangeReport(context context.Context, kind, from, to string) ([]*ReportRow, error) {
	validator := &validate.Validator{}
	validator.OneOf("kind", kind, ReportKindCategory, ReportKindPlace)
	validator.Date("from", from)
	validator.Date("to", to)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	fromDay, _ := time.Parse(dayLayout, from)
	toDay, _ := time.Parse(dayLayout, to)
	if toDay.Before(fromDay) {
		return nil, apperr.ValidationError("Report range end precedes its start")
	}

	if kind == ReportKindCategory {
		return service.repo.CategoryRangeReport(context, from, to)
	}
	return service.repo.PlaceRangeReport(context, from, to)
}

// UpsertCategoryRollup lets an administrator correct a daily category row.
func (service *Service) UpsertCategoryRollup(context context.Context, row *DailyCategoryView) error {
	validator := &validate.Validator{}
	validator.Date("day", row.Day)
	validator.UUID("category_id", row.CategoryID)
	validator.Range("view_count", row.ViewCount, 0, 1_000_000_000)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpsertCategoryRollup(context, row); err != nil {
		return err
	}

	service.logger.Info("category_rollup_upserted",
		slog.String("day", row.Day),
		slog.String("category_id", row.CategoryID),
	)
	return nil
}

// UpsertPlaceRollup lets an administrator correct a daily place row.
func (service *Service) UpsertPlaceRollup(context context.Context, row *DailyPlaceView) error {
	validator := &validate.Validator{}
	validator.Date("day", row.Day)
	validator.UUID("place_id", row.PlaceID)
	validator.Range("view_count", row.ViewCount, 0, 1_000_000_000)
	validator.Range("click_count", row.ClickCount, 0, 1_000_000_000)
	validator.Range("direction_count", row.DirectionCount, 0, 1_000_000_000)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpsertPlaceRollup(context, row); err != nil {
		return err
	}

	service.logger.Info("place_rollup_upserted",
		slog.String("day", row.Day),
		slog.String("place_id", row.PlaceID),
	)
	return nil
}

// AggregateDay recomputes both rollup tables for one calendar day.
// The day defaults to yesterday in the report timezone when empty.
func (service *Service) AggregateDay(context context.Context, day string) (string, error) {
	if day == "" {
		location, err := time.LoadLocation(constants.ReportTimezone)
		if err != nil {
			return "", apperr.Internal(err)
		}
		day = time.Now().In(location).AddDate(0, 0, -1).Format(dayLayout)
	}

	validator := &validate.Validator{}
	validator.Date("day", day)
	if err := validator.Err(); err != nil {
		return "", err
	}

	if err := service.repo.AggregateDay(context, day); err != nil {
		return "", err
	}

	service.logger.Info("daily_rollup_aggregated", slog.String("day", day))
	return day, nil
}
