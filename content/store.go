package content

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/StevenGabule/portfolio/pkg/portal"
)

var ErrNotFound = errors.New("post not found")
var ErrDuplicateSlug = errors.New("duplicate post slug")
var ErrInvalidPost = errors.New("invalid post")

// Store holds the site's posts for the lifetime of the process. It is built
// once and never mutated, so it is safe for concurrent readers.
type Store struct {
	posts   []Post
	bySlug  map[string]int
	version string
}

func NewStore(posts []Post) (*Store, error) {
	validate := portal.GetDefaultValidator()

	store := Store{
		posts:  make([]Post, 0, len(posts)),
		bySlug: make(map[string]int, len(posts)),
	}

	hash := sha256.New()

	for _, post := range posts {
		if errs, err := validate.Check(post); err != nil {
			return nil, fmt.Errorf("%w [%s]: %v", ErrInvalidPost, post.Slug, errs)
		}

		if _, exists := store.bySlug[post.Slug]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, post.Slug)
		}

		store.bySlug[post.Slug] = len(store.posts)
		store.posts = append(store.posts, post.clone())

		hash.Write([]byte(post.Slug + "\x00" + post.Title + "\x00" + post.Body + "\x00"))
	}

	store.version = hex.EncodeToString(hash.Sum(nil))[:16]

	return &store, nil
}

// BySlug is an exact, case-sensitive lookup. Unknown slugs yield ErrNotFound.
func (s *Store) BySlug(slug string) (Post, error) {
	index, ok := s.bySlug[slug]

	if !ok {
		return Post{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}

	return s.posts[index].clone(), nil
}

// All returns the posts in definition order. The slice is a copy.
func (s *Store) All() []Post {
	out := make([]Post, len(s.posts))

	for i, post := range s.posts {
		out[i] = post.clone()
	}

	return out
}

func (s *Store) Len() int {
	return len(s.posts)
}

// Version fingerprints the store content; it changes whenever a post does.
func (s *Store) Version() string {
	return s.version
}

// Categories lists "All" with the total followed by each category in
// first-appearance order.
func (s *Store) Categories() []CategoryCount {
	counts := make(map[Category]int)
	order := make([]Category, 0)

	for _, post := range s.posts {
		if _, seen := counts[post.Category]; !seen {
			order = append(order, post.Category)
		}

		counts[post.Category]++
	}

	out := make([]CategoryCount, 0, len(order)+1)
	out = append(out, CategoryCount{
		Category: AllCategories,
		Label:    AllCategories.Label(),
		Count:    len(s.posts),
	})

	for _, category := range order {
		out = append(out, CategoryCount{
			Category: category,
			Label:    category.Label(),
			Count:    counts[category],
		})
	}

	return out
}

// Related returns up to limit other posts, in definition order.
func (s *Store) Related(slug string, limit int) []Post {
	out := make([]Post, 0, limit)

	for _, post := range s.posts {
		if len(out) >= limit {
			break
		}

		if post.Slug == slug {
			continue
		}

		out = append(out, post.clone())
	}

	return out
}
