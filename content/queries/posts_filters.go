package queries

import (
	"strings"

	"github.com/StevenGabule/portfolio/content"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

type PostFilters struct {
	Category content.Category
	Search   string // case-insensitive substring of the title or excerpt
}

func (f PostFilters) GetCategory() content.Category {
	if f.Category.IsAll() {
		return content.AllCategories
	}

	return f.Category
}

// GetSearch lower-cases the query without trimming, so "  " only matches
// titles that contain two spaces.
func (f PostFilters) GetSearch() string {
	return portal.Fold(f.Search)
}

func (f PostFilters) IsUnfiltered() bool {
	return f.GetCategory() == content.AllCategories && f.Search == ""
}

func (f PostFilters) Matches(post content.Post) bool {
	category := f.GetCategory()

	if category != content.AllCategories && post.Category != category {
		return false
	}

	if f.Search == "" {
		return true
	}

	search := f.GetSearch()

	return strings.Contains(portal.Fold(post.Title), search) ||
		strings.Contains(portal.Fold(post.Excerpt), search)
}
