package markdown

import "strings"

const (
	headingTwoPrefix   = "## "
	headingThreePrefix = "### "
	bulletPrefix       = "- "
	fencePrefix        = "```"
	boldDelimiter      = "**"
)

// Parse classifies every line of body into exactly one Block, in order.
// Lines are split on "\n" only, so the result always has
// strings.Count(body, "\n")+1 entries. Parse never fails: anything that is not
// recognised becomes a Paragraph.
func Parse(body string) []Block {
	lines := strings.Split(body, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		blocks = append(blocks, ParseLine(line))
	}

	return blocks
}

// ParseLine applies the classification rules to a single line. The first
// matching rule wins.
func ParseLine(line string) Block {
	switch {
	case strings.HasPrefix(line, headingTwoPrefix):
		return Heading{Level: 2, Text: strings.TrimPrefix(line, headingTwoPrefix)}
	case strings.HasPrefix(line, headingThreePrefix):
		return Heading{Level: 3, Text: strings.TrimPrefix(line, headingThreePrefix)}
	case strings.HasPrefix(line, bulletPrefix):
		return BulletItem{Content: ParseInline(strings.TrimPrefix(line, bulletPrefix))}
	case strings.HasPrefix(line, fencePrefix):
		return CodeFence{Info: strings.TrimPrefix(line, fencePrefix)}
	case strings.TrimSpace(line) == "":
		return Blank{}
	default:
		return Paragraph{Text: line}
	}
}

// ParseInline turns every "**text**" pair into a bold span. Pairs are matched
// leftmost first with the shortest possible content and never overlap. An
// opening "**" without a closing one is left in the text as typed.
func ParseInline(text string) []Span {
	spans := make([]Span, 0, 1)
	rest := text

	for {
		open := strings.Index(rest, boldDelimiter)
		if open < 0 {
			break
		}

		afterOpen := rest[open+len(boldDelimiter):]
		closing := strings.Index(afterOpen, boldDelimiter)

		if closing < 0 {
			break
		}

		if open > 0 {
			spans = append(spans, Span{Text: rest[:open]})
		}

		spans = append(spans, Span{Text: afterOpen[:closing], Bold: true})
		rest = afterOpen[closing+len(boldDelimiter):]
	}

	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}

	return spans
}
