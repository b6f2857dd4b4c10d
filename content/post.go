package content

import (
	"slices"
	"time"

	"github.com/StevenGabule/portfolio/pkg/markdown"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

type Category string

const (
	AllCategories Category = "All"
	Tutorial      Category = "Tutorial"
	Business      Category = "Business"
	Process       Category = "Process"
)

var categoryLabels = map[Category]string{
	AllCategories: "All Posts",
	Tutorial:      "Tutorials",
	Business:      "Business",
	Process:       "Process",
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return string(c)
}

func (c Category) IsAll() bool {
	return c == "" || c == AllCategories
}

type Gradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Post struct {
	Slug        string    `validate:"required,slug"`
	Title       string    `validate:"required"`
	Excerpt     string    `validate:"required"`
	PublishedAt time.Time `validate:"required"`
	ReadingTime string
	Category    Category `validate:"required,oneof=Tutorial Business Process"`
	Tags        []string
	Body        string
	Gradient    Gradient
	Featured    bool
	Views       string
}

func (p Post) FormattedDate() string {
	return p.PublishedAt.Format(portal.DisplayDateLayout)
}

// Blocks parses the raw body. It is recomputed on every call; posts are few
// and bodies short.
func (p Post) Blocks() []markdown.Block {
	return markdown.Parse(p.Body)
}

func (p Post) clone() Post {
	p.Tags = slices.Clone(p.Tags)

	return p
}

type CategoryCount struct {
	Category Category
	Label    string
	Count    int
}
