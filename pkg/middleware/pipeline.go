package middleware

import (
	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
)

type Pipeline struct {
	Env              *env.Environment
	PublicMiddleware PublicMiddleware
}

// Chain wraps h so that handlers run in the order given.
func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
