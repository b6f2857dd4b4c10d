package payload

import (
	"html/template"
	"net/http"
	"time"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/content/queries"
	"github.com/StevenGabule/portfolio/pkg/markdown/render"
)

type GradientResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PostResponse struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Excerpt     string           `json:"excerpt"`
	Category    string           `json:"category"`
	Tags        []string         `json:"tags"`
	PublishedAt string           `json:"published_at"`
	Date        string           `json:"date"`
	ReadingTime string           `json:"reading_time"`
	Views       string           `json:"views,omitempty"`
	Featured    bool             `json:"featured"`
	Gradient    GradientResponse `json:"gradient"`
}

type PostsFiltersResponse struct {
	Category string `json:"category"`
	Search   string `json:"q"`
}

type PostsListingResponse struct {
	Version    string               `json:"version"`
	Featured   *PostResponse        `json:"featured"`
	Posts      []PostResponse       `json:"posts"`
	Empty      bool                 `json:"empty"`
	Categories []CategoryResponse   `json:"categories"`
	Filters    PostsFiltersResponse `json:"filters"`
}

type PostDetailResponse struct {
	PostResponse
	Blocks  []render.Element `json:"blocks"`
	HTML    template.HTML    `json:"html"`
	Related []PostResponse   `json:"related"`
}

// GetPostsFiltersFrom reads ?category= and ?q=. Values are used as given:
// the category match is exact and the search keeps its whitespace.
func GetPostsFiltersFrom(r *http.Request) queries.PostFilters {
	query := r.URL.Query()

	return queries.PostFilters{
		Category: content.Category(query.Get("category")),
		Search:   query.Get("q"),
	}
}

func GetSlugFrom(r *http.Request) string {
	return r.PathValue("slug")
}

func GetPostResponse(p content.Post) PostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return PostResponse{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Category:    string(p.Category),
		Tags:        tags,
		PublishedAt: p.PublishedAt.Format(time.DateOnly),
		Date:        p.FormattedDate(),
		ReadingTime: p.ReadingTime,
		Views:       p.Views,
		Featured:    p.Featured,
		Gradient:    GradientResponse{From: p.Gradient.From, To: p.Gradient.To},
	}
}

func GetPostsResponse(posts []content.Post) []PostResponse {
	data := make([]PostResponse, 0, len(posts))

	for _, post := range posts {
		data = append(data, GetPostResponse(post))
	}

	return data
}

func GetPostsListingResponse(version string, result queries.ListingResult, filters queries.PostFilters, categories []content.CategoryCount) PostsListingResponse {
	resp := PostsListingResponse{
		Version:    version,
		Posts:      GetPostsResponse(result.Posts),
		Empty:      result.Empty,
		Categories: GetCategoriesResponse(categories),
		Filters: PostsFiltersResponse{
			Category: string(filters.GetCategory()),
			Search:   filters.Search,
		},
	}

	if result.Featured != nil {
		featured := GetPostResponse(*result.Featured)
		resp.Featured = &featured
	}

	return resp
}

func GetPostDetailResponse(p content.Post, related []content.Post) PostDetailResponse {
	blocks := p.Blocks()

	return PostDetailResponse{
		PostResponse: GetPostResponse(p),
		Blocks:       render.Elements(blocks),
		HTML:         render.HTML(blocks),
		Related:      GetPostsResponse(related),
	}
}
