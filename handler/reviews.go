package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/StevenGabule/portfolio/handler/payload"
	"github.com/StevenGabule/portfolio/pkg/carousel"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

// ReviewsHandler serves the testimonials together with the scheduled
// spotlight. The spotlight moves on its own, so nothing here is cacheable.
type ReviewsHandler struct {
	filePath  string
	spotlight *carousel.Carousel
	validator *portal.Validator
}

func MakeReviewsHandler(filePath string, spotlight *carousel.Carousel, validator *portal.Validator) ReviewsHandler {
	return ReviewsHandler{
		filePath:  filePath,
		spotlight: spotlight,
		validator: validator,
	}
}

func (h ReviewsHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	data, err := portal.ParseJsonFile[payload.ReviewsResponse](h.filePath)

	if err != nil {
		return endpoint.LogInternalError("could not read reviews data", err)
	}

	listing := payload.ReviewsListingResponse{
		Version:   data.Version,
		Stats:     data.Stats,
		Data:      data.Data,
		Spotlight: h.spotlight.Snapshot(),
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(listing); err != nil {
		slog.Error("Error marshaling JSON for reviews response", "error", err)
	}

	return nil
}

func (h ReviewsHandler) Spotlight(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	req, err := endpoint.ParseRequestBody[payload.SpotlightRequest](r)

	if err != nil {
		return endpoint.LogBadRequestError("invalid spotlight request", err)
	}

	if errs, err := h.validator.Check(req); err != nil {
		return endpoint.UnprocessableEntity("invalid spotlight request", errs)
	}

	current := h.spotlight.Snapshot()

	if req.Current != nil {
		current.Index = *req.Current.Index
		current.State = req.Current.State

		if err := current.Validate(); err != nil {
			return endpoint.UnprocessableEntity("invalid spotlight position", map[string]any{"current.index": err.Error()})
		}
	}

	next, apiErr := h.nextSnapshot(current, req)

	if apiErr != nil {
		return apiErr
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(next); err != nil {
		slog.Error("Error marshaling JSON for spotlight response", "error", err)
	}

	return nil
}

func (h ReviewsHandler) nextSnapshot(current carousel.Snapshot, req payload.SpotlightRequest) (carousel.Snapshot, *endpoint.ApiError) {
	switch req.Action {
	case payload.SpotlightPause:
		return current.Pause(), nil
	case payload.SpotlightResume:
		return current.Resume(), nil
	case payload.SpotlightNext:
		return current.Next(), nil
	case payload.SpotlightPrevious:
		return current.Previous(), nil
	case payload.SpotlightSelect:
		next, err := current.Select(*req.Index)

		if errors.Is(err, carousel.ErrIndexOutOfRange) {
			return current, endpoint.UnprocessableEntity("invalid spotlight index", map[string]any{"index": err.Error()})
		}

		if err != nil {
			return current, endpoint.LogInternalError("could not move spotlight", err)
		}

		return next, nil
	default:
		return current, endpoint.BadRequestError(fmt.Sprintf("unknown spotlight action %q", req.Action))
	}
}
