package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/StevenGabule/portfolio/handler/payload"
	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

type KeepAliveHandler struct {
	env *env.PingEnvironment
	now func() time.Time
}

func MakeKeepAliveHandler(e *env.PingEnvironment) KeepAliveHandler {
	return KeepAliveHandler{env: e, now: time.Now}
}

func (h KeepAliveHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	user, pass, ok := r.BasicAuth()

	if !ok || h.env.HasInvalidCreds(user, pass) {
		w.Header().Set("WWW-Authenticate", `Basic realm="ping", charset="UTF-8"`)

		return endpoint.LogUnauthorisedError(
			"invalid credentials",
			fmt.Errorf("invalid credentials for user %q", user),
		)
	}

	data := payload.KeepAliveResponse{
		Message:  "pong",
		DateTime: h.now().UTC().Format(portal.DatesLayout),
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode keep-alive response", err)
	}

	return nil
}
