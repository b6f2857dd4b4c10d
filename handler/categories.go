package handler

import (
	"log/slog"
	"net/http"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/handler/payload"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
)

type CategoriesHandler struct {
	store *content.Store
}

func MakeCategoriesHandler(store *content.Store) CategoriesHandler {
	return CategoriesHandler{store: store}
}

func (h CategoriesHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	resp := endpoint.NewResponseFrom(h.store.Version(), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	data := payload.CategoriesResponse{
		Version: h.store.Version(),
		Data:    payload.GetCategoriesResponse(h.store.Categories()),
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for categories response", "error", err)
	}

	return nil
}
