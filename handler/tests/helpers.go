package handlertests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/StevenGabule/portfolio/content"
)

type TestEnvelope struct {
	Version string `json:"version"`
	Data    any    `json:"data"`
}

// WriteJSON encodes v into a temp file that lives as long as the test.
func WriteJSON(t *testing.T, v any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}

	defer f.Close()

	if err := json.NewEncoder(f).Encode(v); err != nil {
		t.Fatalf("encode: %v", err)
	}

	return path
}

func WriteRaw(t *testing.T, raw string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "raw.json")

	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	return path
}

// MakeStore builds a three post store: a featured tutorial, a business
// post and a process post, in that order.
func MakeStore(t *testing.T) *content.Store {
	t.Helper()

	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	store, err := content.NewStore([]content.Post{
		{
			Slug:        "getting-started-with-nextjs-15",
			Title:       "Getting Started with Next.js 15",
			Excerpt:     "Learn the fundamentals of Next.js 15.",
			PublishedAt: day(2025, time.January, 1),
			ReadingTime: "8 min read",
			Category:    content.Tutorial,
			Tags:        []string{"Next.js", "React"},
			Body:        "## Introduction\n\n- **Layouts**: shared UI\n```tsx\n<main>",
			Gradient:    content.Gradient{From: "from-blue-500", To: "to-cyan-500"},
			Featured:    true,
			Views:       "2.4k",
		},
		{
			Slug:        "why-hire-full-stack-developer",
			Title:       "Why Hire a Full Stack Developer?",
			Excerpt:     "Discover the advantages of hiring a full-stack developer.",
			PublishedAt: day(2024, time.December, 15),
			ReadingTime: "5 min read",
			Category:    content.Business,
			Body:        "## The Value\n",
		},
		{
			Slug:        "my-web-development-process",
			Title:       "My Web Development Process",
			Excerpt:     "A behind-the-scenes look at how I work.",
			PublishedAt: day(2024, time.December, 1),
			ReadingTime: "6 min read",
			Category:    content.Process,
			Body:        "Plain paragraph",
		},
	})

	if err != nil {
		t.Fatalf("store: %v", err)
	}

	return store
}
