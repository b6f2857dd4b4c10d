package handler

import (
	"log/slog"
	"net/http"

	"github.com/StevenGabule/portfolio/handler/payload"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

type ServicesHandler struct {
	filePath string
}

func MakeServicesHandler(filePath string) ServicesHandler {
	return ServicesHandler{filePath: filePath}
}

func (h ServicesHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	data, err := portal.ParseJsonFile[payload.ServicesResponse](h.filePath)

	if err != nil {
		return endpoint.LogInternalError("could not read services data", err)
	}

	resp := endpoint.NewResponseFrom(data.Version, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for services response", "error", err)
	}

	return nil
}
