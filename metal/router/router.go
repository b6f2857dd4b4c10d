package router

import (
	baseHttp "net/http"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/handler"
	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/pkg/carousel"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/middleware"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

type Router struct {
	Env       *env.Environment
	Mux       *baseHttp.ServeMux
	Pipeline  middleware.Pipeline
	Store     *content.Store
	Spotlight *carousel.Carousel
	Validator *portal.Validator
}

func (r *Router) fixture() Fixture {
	return NewFixture(r.Env.Content)
}

func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(apiHandler),
	)
}

func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.PublicMiddleware.Handle,
		),
	)
}

func (r *Router) Posts() {
	abstract := handler.MakePostsHandler(r.Store)

	r.Mux.HandleFunc("GET /posts", r.PipelineFor(abstract.Index))
	r.Mux.HandleFunc("GET /posts/{slug}", r.PipelineFor(abstract.Show))
}

func (r *Router) Categories() {
	abstract := handler.MakeCategoriesHandler(r.Store)

	r.Mux.HandleFunc("GET /categories", r.PipelineFor(abstract.Handle))
}

func (r *Router) Projects() {
	abstract := handler.MakeProjectsHandler(r.fixture().GetProjects())

	r.Mux.HandleFunc("GET /projects", r.PipelineFor(abstract.Handle))
}

func (r *Router) Reviews() {
	abstract := handler.MakeReviewsHandler(r.fixture().GetReviews(), r.Spotlight, r.Validator)

	r.Mux.HandleFunc("GET /reviews", r.PipelineFor(abstract.Handle))
	r.Mux.HandleFunc("POST /reviews/spotlight", r.PipelineFor(abstract.Spotlight))
}

func (r *Router) Services() {
	abstract := handler.MakeServicesHandler(r.fixture().GetServices())

	r.Mux.HandleFunc("GET /services", r.PipelineFor(abstract.Handle))
}

func (r *Router) Contact() {
	abstract := handler.MakeContactHandler(r.Validator)

	r.Mux.HandleFunc("POST /contact", r.PublicPipelineFor(abstract.Handle))
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	r.Mux.HandleFunc("GET /ping", r.PipelineFor(abstract.Handle))
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler())
}

// All registers every route of the site API.
func (r *Router) All() {
	r.Posts()
	r.Categories()
	r.Projects()
	r.Reviews()
	r.Services()
	r.Contact()
	r.KeepAlive()
	r.Metrics()
}
