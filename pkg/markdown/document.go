package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/StevenGabule/portfolio/pkg/portal"
	"github.com/adrg/frontmatter"
)

type GradientMatter struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type FrontMatter struct {
	Title       string         `yaml:"title"`
	Excerpt     string         `yaml:"excerpt"`
	Slug        string         `yaml:"slug"`
	Category    string         `yaml:"category"`
	PublishedAt string         `yaml:"published_at"`
	ReadingTime string         `yaml:"reading_time"`
	Views       string         `yaml:"views"`
	Featured    bool           `yaml:"featured"`
	Tags        []string       `yaml:"tags"`
	Gradient    GradientMatter `yaml:"gradient"`
}

// Document is a post file: YAML front matter followed by the raw body.
type Document struct {
	FrontMatter
	Body string
}

func ParseDocument(raw []byte) (Document, error) {
	var matter FrontMatter

	body, err := frontmatter.MustParse(bytes.NewReader(raw), &matter)
	if err != nil {
		return Document{}, fmt.Errorf("error parsing front matter: %w", err)
	}

	return Document{
		FrontMatter: matter,
		Body:        string(body),
	}, nil
}

func (f FrontMatter) GetPublishedAt() (time.Time, error) {
	publishedAt, err := portal.NewStringable(f.PublishedAt).ToDate()

	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing published_at: %w", err)
	}

	return publishedAt, nil
}
