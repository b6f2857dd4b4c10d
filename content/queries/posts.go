package queries

import (
	"github.com/StevenGabule/portfolio/content"
)

type ListingResult struct {
	Featured *content.Post
	Posts    []content.Post
	Empty    bool
}

// Listing applies the blog filters to posts. The featured post is pulled out
// of the grid only for the unfiltered view; any filter puts it back among the
// regular results. A second featured post stays in the grid.
func Listing(posts []content.Post, f PostFilters) ListingResult {
	result := ListingResult{
		Posts: make([]content.Post, 0, len(posts)),
	}

	unfiltered := f.IsUnfiltered()

	if unfiltered {
		for i := range posts {
			if posts[i].Featured {
				featured := posts[i]
				result.Featured = &featured

				break
			}
		}
	}

	matched := 0

	for _, post := range posts {
		if !f.Matches(post) {
			continue
		}

		matched++

		if result.Featured != nil && post.Slug == result.Featured.Slug {
			continue
		}

		result.Posts = append(result.Posts, post)
	}

	result.Empty = matched == 0

	return result
}
