package queries

import "github.com/StevenGabule/portfolio/content"

type Categorised interface {
	GetCategory() string
}

// FilterProjects keeps the items of the given category; "All" or an empty
// category keeps everything. The result is never nil.
func FilterProjects[T Categorised](items []T, category string) []T {
	out := make([]T, 0, len(items))

	for _, item := range items {
		if content.Category(category).IsAll() || item.GetCategory() == category {
			out = append(out, item)
		}
	}

	return out
}
