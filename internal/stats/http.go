package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/middleware"
	requestutil "github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/request"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/respond"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public ingestion endpoint for the frontend beacon
	router.Post("/events", handler.recordEvent)

	// Admin strict only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Get("/reports/{kind}", handler.rangeReport)
		adminRoute.Patch("/rollups/categories", handler.upsertCategoryRollup)
		adminRoute.Patch("/rollups/places", handler.upsertPlaceRollup)
		adminRoute.Post("/rollups/aggregate", handler.aggregateDay)
	})
}

// recordEvent always answers 204: ingestion is fire-and-forget and the
// beacon must never see an analytics failure.
func (handler *Handler) recordEvent(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		EventType  EventType `json:"event_type"`
		CategoryID *string   `json:"category_id"`
		PlaceID    *string   `json:"place_id"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.service.RecordEvent(request.Context(), input.EventType, input.CategoryID, input.PlaceID)
	respond.NoContent(writer)
}

func (handler *Handler) rangeReport(writer http.ResponseWriter, request *http.Request) {
	kind := requestutil.Param(request, "kind")
	from := request.URL.Query().Get("from")
	to := request.URL.Query().Get("to")

	report, err := handler.service.RangeReport(request.Context(), kind, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

func (handler *Handler) upsertCategoryRollup(writer http.ResponseWriter, request *http.Request) {
	var input DailyCategoryView
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpsertCategoryRollup(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) upsertPlaceRollup(writer http.ResponseWriter, request *http.Request) {
	var input DailyPlaceView
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpsertPlaceRollup(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) aggregateDay(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Day string `json:"day"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	day, err := handler.service.AggregateDay(request.Context(), input.Day)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"day": day})
}
