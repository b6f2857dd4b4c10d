package markdown

// Kind names a block variant in logs, CLI output and JSON payloads.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindBullet    Kind = "bullet"
	KindCodeFence Kind = "code_fence"
	KindBlank     Kind = "blank"
	KindParagraph Kind = "paragraph"
)

// Block is one classified line of a post body. The set of variants is closed:
// every renderer implements Visitor, so a new variant does not compile until
// each renderer handles it.
type Block interface {
	Kind() Kind
	Accept(v Visitor)
	sealed()
}

type Visitor interface {
	VisitHeading(b Heading)
	VisitBulletItem(b BulletItem)
	VisitCodeFence(b CodeFence)
	VisitBlank(b Blank)
	VisitParagraph(b Paragraph)
}

// Heading is a "## " (level 2) or "### " (level 3) line.
type Heading struct {
	Level int
	Text  string
}

// BulletItem is a "- " line. Its content keeps the inline bold spans.
type BulletItem struct {
	Content []Span
}

// CodeFence is a "```" delimiter line. It is never rendered and does not
// change how the following lines are classified.
type CodeFence struct {
	Info string
}

// Blank is an empty or whitespace-only line.
type Blank struct{}

// Paragraph is any other line, kept verbatim.
type Paragraph struct {
	Text string
}

// Span is a run of inline text, optionally bold.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

func (Heading) Kind() Kind    { return KindHeading }
func (BulletItem) Kind() Kind { return KindBullet }
func (CodeFence) Kind() Kind  { return KindCodeFence }
func (Blank) Kind() Kind      { return KindBlank }
func (Paragraph) Kind() Kind  { return KindParagraph }

func (b Heading) Accept(v Visitor)    { v.VisitHeading(b) }
func (b BulletItem) Accept(v Visitor) { v.VisitBulletItem(b) }
func (b CodeFence) Accept(v Visitor)  { v.VisitCodeFence(b) }
func (b Blank) Accept(v Visitor)      { v.VisitBlank(b) }
func (b Paragraph) Accept(v Visitor)  { v.VisitParagraph(b) }

func (Heading) sealed()    {}
func (BulletItem) sealed() {}
func (CodeFence) sealed()  {}
func (Blank) sealed()      {}
func (Paragraph) sealed()  {}

// PlainText joins the spans without any emphasis markers.
func (b BulletItem) PlainText() string {
	var text string

	for _, span := range b.Content {
		text += span.Text
	}

	return text
}
