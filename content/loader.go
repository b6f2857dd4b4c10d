package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/StevenGabule/portfolio/pkg/markdown"
)

const postExtension = ".md"

// LoadDir reads every post file in dir. Files are taken in name order, which
// is the definition order of the resulting store.
func LoadDir(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read posts dir %s: %w", dir, err)
	}

	var posts []Post

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), postExtension) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read post %s: %w", path, err)
		}

		post, err := postFrom(raw)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", path, err)
		}

		posts = append(posts, post)
	}

	return posts, nil
}

// Load builds a store from the post files in dir.
func Load(dir string) (*Store, error) {
	posts, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}

	return NewStore(posts)
}

func postFrom(raw []byte) (Post, error) {
	doc, err := markdown.ParseDocument(raw)
	if err != nil {
		return Post{}, err
	}

	publishedAt, err := doc.GetPublishedAt()
	if err != nil {
		return Post{}, err
	}

	return Post{
		Slug:        doc.Slug,
		Title:       doc.Title,
		Excerpt:     doc.Excerpt,
		PublishedAt: publishedAt,
		ReadingTime: doc.ReadingTime,
		Category:    Category(doc.Category),
		Tags:        doc.Tags,
		Body:        doc.Body,
		Gradient:    Gradient{From: doc.Gradient.From, To: doc.Gradient.To},
		Featured:    doc.Featured,
		Views:       doc.Views,
	}, nil
}
