package discovery

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/apperr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/respond"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/geo"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.discover)
}

func (handler *Handler) discover(writer http.ResponseWriter, request *http.Request) {
	filter, err := parseFilter(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	results, err := handler.service.Discover(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, results)
}

// parseFilter maps query parameters onto a [Filter]. Numeric parameters
// that fail to parse are rejected rather than silently dropped.
func parseFilter(request *http.Request) (Filter, error) {
	values := request.URL.Query()

	filter := Filter{
		CategorySlug:   values.Get("category"),
		FacetGroupSlug: values.Get("group"),
		Query:          values.Get("q"),
		OpenOnly:       values.Get("open_only") == "true",
	}

	var details []apperr.FieldError

	latRaw, lngRaw := values.Get("lat"), values.Get("lng")
	if latRaw != "" || lngRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lng, lngErr := strconv.ParseFloat(lngRaw, 64)
		if latErr != nil || lngErr != nil {
			details = append(details, apperr.FieldError{Field: "lat", Message: "lat and lng must both be valid numbers"})
		} else {
			filter.Origin = &geo.Coordinate{Lat: lat, Lng: lng}
		}
	}

	if raw := values.Get("max_distance_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			details = append(details, apperr.FieldError{Field: "max_distance_km", Message: "must be a non-negative number"})
		} else {
			filter.MaxDistanceKm = &parsed
		}
	}

	if raw := values.Get("max_price"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 4 {
			details = append(details, apperr.FieldError{Field: "max_price", Message: "must be an integer between 1 and 4"})
		} else {
			filter.MaxPriceLevel = &parsed
		}
	}

	if raw := values.Get("min_rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 5 {
			details = append(details, apperr.FieldError{Field: "min_rating", Message: "must be a number between 0 and 5"})
		} else {
			filter.MinRating = &parsed
		}
	}

	if len(details) > 0 {
		return Filter{}, apperr.ValidationError("Invalid discovery parameters", details...)
	}
	return filter, nil
}
