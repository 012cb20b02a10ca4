package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/request"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the favorites endpoints. They are deliberately not
// behind RequireAuth: anonymous visitors get empty lists and silent no-ops
// so the frontend can render the same UI for everyone.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listFavorites)
	router.Get("/ids", handler.listFavoriteIDs)
	router.Post("/{id}", handler.addFavorite)
	router.Delete("/{id}", handler.removeFavorite)
}

// userID returns the caller's identifier, or "" for anonymous visitors.
func userID(request *http.Request) string {
	claims := requestutil.Claims(request)
	if claims == nil {
		return ""
	}
	return claims.UserID
}

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	places, err := handler.service.List(request.Context(), userID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, places)
}

func (handler *Handler) listFavoriteIDs(writer http.ResponseWriter, request *http.Request) {
	ids, err := handler.service.ListIDs(request.Context(), userID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ids)
}

func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	placeID := requestutil.ID(request, "id")

	if err := handler.service.Add(request.Context(), userID(request), placeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	placeID := requestutil.ID(request, "id")

	if err := handler.service.Remove(request.Context(), userID(request), placeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
