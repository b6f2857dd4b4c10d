package handler

import (
	"log/slog"
	"net/http"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/content/queries"
	"github.com/StevenGabule/portfolio/handler/payload"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

type ProjectsHandler struct {
	filePath string
}

func MakeProjectsHandler(filePath string) ProjectsHandler {
	return ProjectsHandler{filePath: filePath}
}

func (h ProjectsHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	data, err := portal.ParseJsonFile[payload.ProjectsResponse](h.filePath)

	if err != nil {
		return endpoint.LogInternalError("could not read projects data", err)
	}

	resp := endpoint.NewResponseFrom(data.Version, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	category := r.URL.Query().Get("category")
	if content.Category(category).IsAll() {
		category = string(content.AllCategories)
	}

	projects := queries.FilterProjects(data.Data, category)

	listing := payload.ProjectsListingResponse{
		Version:    data.Version,
		Category:   category,
		Categories: data.Categories,
		Data:       projects,
		Empty:      len(projects) == 0,
	}

	if err := resp.RespondOk(listing); err != nil {
		slog.Error("Error marshaling JSON for projects response", "error", err)
	}

	return nil
}
