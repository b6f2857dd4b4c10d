package markdown

import (
	"testing"
	"time"
)

func TestParseDocument(t *testing.T) {
	raw := `---
title: Why Hire a Full Stack Developer?
slug: why-hire-full-stack-developer
category: Business
published_at: "2024-12-15"
reading_time: 5 min read
featured: true
tags:
  - Hiring
  - Business
gradient:
  from: from-purple-500
  to: to-pink-500
---
## The Value of Full Stack Development
- **Cost Efficiency**
`

	doc, err := ParseDocument([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Slug != "why-hire-full-stack-developer" || doc.Category != "Business" || !doc.Featured {
		t.Fatalf("front matter parse failed: %+v", doc.FrontMatter)
	}

	if len(doc.Tags) != 2 || doc.Tags[0] != "Hiring" {
		t.Fatalf("unexpected tags %v", doc.Tags)
	}

	if doc.Gradient.From != "from-purple-500" || doc.Gradient.To != "to-pink-500" {
		t.Fatalf("unexpected gradient %+v", doc.Gradient)
	}

	blocks := Parse(doc.Body)
	if blocks[0].Kind() != KindHeading {
		t.Fatalf("expected body to start with the heading, got %s", blocks[0].Kind())
	}

	publishedAt, err := doc.GetPublishedAt()
	if err != nil {
		t.Fatalf("get date: %v", err)
	}

	if !publishedAt.Equal(time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", publishedAt)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	if _, err := ParseDocument([]byte("no front matter here")); err == nil {
		t.Fatalf("expected missing front matter error")
	}

	doc, err := ParseDocument([]byte("---\nslug: a\npublished_at: bad\n---\nbody"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, err := doc.GetPublishedAt(); err == nil {
		t.Fatalf("expected date error")
	}
}
