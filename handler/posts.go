package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/content/queries"
	"github.com/StevenGabule/portfolio/handler/payload"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/portal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const relatedPostsLimit = 2

type PostsHandler struct {
	store *content.Store
}

func MakePostsHandler(store *content.Store) PostsHandler {
	return PostsHandler{store: store}
}

func (h PostsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	_, span := otel.Tracer(portal.TracerName).Start(r.Context(), "posts.index")
	defer span.End()

	filters := payload.GetPostsFiltersFrom(r)

	span.SetAttributes(
		attribute.String("posts.category", string(filters.GetCategory())),
		attribute.Bool("posts.search", filters.Search != ""),
	)

	// The listing is a pure function of the store and the query string, and
	// caches key on the URL, so the store version is a valid ETag here.
	resp := endpoint.NewResponseFrom(h.store.Version(), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	result := queries.Listing(h.store.All(), filters)

	span.SetAttributes(
		attribute.Int("posts.matched", len(result.Posts)),
		attribute.Bool("posts.empty", result.Empty),
	)

	data := payload.GetPostsListingResponse(h.store.Version(), result, filters, h.store.Categories())

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for posts listing", "error", err)

		return nil
	}

	return nil
}

func (h PostsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	_, span := otel.Tracer(portal.TracerName).Start(r.Context(), "posts.show")
	defer span.End()

	slug := payload.GetSlugFrom(r)
	span.SetAttributes(attribute.String("posts.slug", slug))

	post, err := h.store.BySlug(slug)

	if errors.Is(err, content.ErrNotFound) {
		span.SetStatus(codes.Error, "post not found")

		return endpoint.NotFound("post [" + slug + "] does not exist")
	}

	if err != nil {
		span.RecordError(err)

		return endpoint.LogInternalError("could not load post", err)
	}

	resp := endpoint.NewResponseFrom(h.store.Version(), w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	data := payload.GetPostDetailResponse(post, h.store.Related(post.Slug, relatedPostsLimit))

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for post", "slug", slug, "error", err)

		return nil
	}

	return nil
}
