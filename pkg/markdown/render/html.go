package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/StevenGabule/portfolio/pkg/markdown"
)

type htmlWriter struct {
	out    strings.Builder
	inList bool
}

// HTML renders blocks as an article body fragment. All text is escaped; bold
// spans are the only markup taken from the source. Consecutive bullets share
// one <ul>; fences render nothing and so do not split a list.
func HTML(blocks []markdown.Block) template.HTML {
	w := &htmlWriter{}

	for _, block := range blocks {
		block.Accept(w)
	}

	w.closeList()

	return template.HTML(w.out.String())
}

func (w *htmlWriter) closeList() {
	if !w.inList {
		return
	}

	w.out.WriteString("</ul>\n")
	w.inList = false
}

func (w *htmlWriter) VisitHeading(b markdown.Heading) {
	w.closeList()

	fmt.Fprintf(&w.out, "<h%d class=\"heading-%d\">%s</h%d>\n",
		b.Level, b.Level, template.HTMLEscapeString(b.Text), b.Level,
	)
}

func (w *htmlWriter) VisitBulletItem(b markdown.BulletItem) {
	if !w.inList {
		w.out.WriteString("<ul class=\"bullets\">\n")
		w.inList = true
	}

	w.out.WriteString(`<li class="bullet">`)

	for _, span := range b.Content {
		text := template.HTMLEscapeString(span.Text)

		if span.Bold {
			w.out.WriteString("<strong>" + text + "</strong>")
			continue
		}

		w.out.WriteString(text)
	}

	w.out.WriteString("</li>\n")
}

func (w *htmlWriter) VisitCodeFence(markdown.CodeFence) {}

func (w *htmlWriter) VisitBlank(markdown.Blank) {
	w.closeList()
	w.out.WriteString("<div class=\"spacer\"></div>\n")
}

func (w *htmlWriter) VisitParagraph(b markdown.Paragraph) {
	w.closeList()
	w.out.WriteString("<p>" + template.HTMLEscapeString(b.Text) + "</p>\n")
}
