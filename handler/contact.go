package handler

import (
	"log/slog"
	"net/http"

	"github.com/StevenGabule/portfolio/handler/payload"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/middleware"
	"github.com/StevenGabule/portfolio/pkg/portal"
	"github.com/google/uuid"
)

const contactAcceptedMessage = "Thanks for reaching out. I'll get back to you within 24 hours."

// ContactHandler accepts contact form submissions. Rate limiting and
// duplicate suppression happen in the public middleware before this runs.
type ContactHandler struct {
	validator *portal.Validator
}

func MakeContactHandler(validator *portal.Validator) ContactHandler {
	return ContactHandler{validator: validator}
}

func (h ContactHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	req, err := endpoint.ParseRequestBody[payload.ContactRequest](r)

	if err != nil {
		return endpoint.LogBadRequestError("invalid contact request", err)
	}

	if errs, err := h.validator.Check(req); err != nil {
		return endpoint.UnprocessableEntity("the contact form has errors", errs)
	}

	id := uuid.NewString()

	slog.Info("contact message received",
		"uuid", id,
		"email", req.Email,
		"subject", req.Subject,
		"client_ip", portal.ParseClientIP(r),
		"request_id", middleware.RequestIDFrom(r.Context()),
	)

	data := payload.ContactResponse{
		UUID:    id,
		Message: contactAcceptedMessage,
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondWithStatus(http.StatusAccepted, data); err != nil {
		slog.Error("Error marshaling JSON for contact response", "error", err)
	}

	return nil
}
