package render

import "github.com/StevenGabule/portfolio/pkg/markdown"

const (
	ElementHeading   = "heading"
	ElementBullet    = "bullet"
	ElementSpacer    = "spacer"
	ElementParagraph = "paragraph"
)

// Element is the presentational unit the site front-end draws for a block.
type Element struct {
	Kind  string          `json:"kind"`
	Level int             `json:"level,omitempty"`
	Text  string          `json:"text,omitempty"`
	Spans []markdown.Span `json:"spans,omitempty"`
}

type elements struct {
	items []Element
}

// Elements projects blocks onto front-end elements. Code fences produce no
// element; every other block produces exactly one.
func Elements(blocks []markdown.Block) []Element {
	v := &elements{items: make([]Element, 0, len(blocks))}

	for _, block := range blocks {
		block.Accept(v)
	}

	return v.items
}

func (e *elements) VisitHeading(b markdown.Heading) {
	e.items = append(e.items, Element{Kind: ElementHeading, Level: b.Level, Text: b.Text})
}

func (e *elements) VisitBulletItem(b markdown.BulletItem) {
	e.items = append(e.items, Element{Kind: ElementBullet, Spans: b.Content})
}

func (e *elements) VisitCodeFence(markdown.CodeFence) {}

func (e *elements) VisitBlank(markdown.Blank) {
	e.items = append(e.items, Element{Kind: ElementSpacer})
}

func (e *elements) VisitParagraph(b markdown.Paragraph) {
	e.items = append(e.items, Element{Kind: ElementParagraph, Text: b.Text})
}
