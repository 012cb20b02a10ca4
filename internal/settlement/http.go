package settlement

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/respond"
)

type Handler struct {
	directory *Directory
}

func NewHandler(directory *Directory) *Handler {
	return &Handler{directory: directory}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listSettlements)
}

func (handler *Handler) listSettlements(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.directory.List(request.Context()))
}
