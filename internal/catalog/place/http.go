package place

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/middleware"
	requestutil "github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/request"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/respond"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/sec"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listPlaces)
	router.Get("/by-slug/{slug}", handler.getPlaceBySlug)
	router.Get("/{id}", handler.getPlace)

	// Editor/Admin Only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

		adminRoute.Post("/", handler.createPlace)
		adminRoute.Patch("/{id}", handler.updatePlace)

		// Admin strict only
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deletePlace)
	})
}

func (handler *Handler) listPlaces(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:      request.URL.Query().Get("q"),
		CategoryID: request.URL.Query().Get("category_id"),
		Settlement: request.URL.Query().Get("settlement"),
	}

	places, total, err := handler.service.ListPlaces(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, places, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPlace(writer http.ResponseWriter, request *http.Request) {
	placeID := requestutil.ID(request, "id")

	place, err := handler.service.GetPlace(request.Context(), placeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, place)
}

func (handler *Handler) getPlaceBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	place, err := handler.service.GetPlaceBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, place)
}

func (handler *Handler) createPlace(writer http.ResponseWriter, request *http.Request) {
	var input Place
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePlace(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePlace(writer http.ResponseWriter, request *http.Request) {
	placeID := requestutil.ID(request, "id")

	var input Place
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePlace(request.Context(), placeID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePlace(writer http.ResponseWriter, request *http.Request) {
	placeID := requestutil.ID(request, "id")

	if err := handler.service.DeletePlace(request.Context(), placeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
