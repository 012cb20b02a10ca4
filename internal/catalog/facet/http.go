package facet

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
	// Public
	router.Get("/", handler.listGroups)
	router.Get("/mapping", handler.allCategoryGroups)
	router.Get("/{slug}", handler.getGroup)
	router.Get("/{slug}/categories", handler.categoriesForGroup)
	router.Get("/by-category/{id}", handler.groupsForCategory)

	// Editor/Admin Only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

		adminRoute.Post("/", handler.createGroup)
		adminRoute.Put("/by-category/{id}", handler.replaceCategoryGroups)

		// Admin strict only
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{slug}", handler.deleteGroup)
	})
}

func (handler *Handler) listGroups(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.ListGroups(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) allCategoryGroups(writer http.ResponseWriter, request *http.Request) {
	mapping, err := handler.service.AllCategoryGroups(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, mapping)
}

func (handler *Handler) getGroup(writer http.ResponseWriter, request *http.Request) {
	groupSlug := chi.URLParam(request, "slug")

	group, err := handler.service.GetGroup(request.Context(), groupSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, group)
}

func (handler *Handler) createGroup(writer http.ResponseWriter, request *http.Request) {
	var input FacetGroup
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGroup(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteGroup(writer http.ResponseWriter, request *http.Request) {
	groupSlug := chi.URLParam(request, "slug")

	if err := handler.service.DeleteGroup(request.Context(), groupSlug); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) groupsForCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID := requestutil.ID(request, "id")

	groups, err := handler.service.GroupsForCategory(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, groups)
}

func (handler *Handler) categoriesForGroup(writer http.ResponseWriter, request *http.Request) {
	groupSlug := chi.URLParam(request, "slug")

	categories, err := handler.service.CategoriesForGroup(request.Context(), groupSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) replaceCategoryGroups(writer http.ResponseWriter, request *http.Request) {
	categoryID := requestutil.ID(request, "id")

	var input struct {
		GroupSlugs []string `json:"group_slugs"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Replace(request.Context(), categoryID, input.GroupSlugs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
