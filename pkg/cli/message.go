package cli

import (
	"fmt"
	"io"
)

// Painter writes coloured lines to w. A Painter with Plain set writes the
// text only, for output that is piped or captured.
type Painter struct {
	w     io.Writer
	Plain bool
}

func NewPainter(w io.Writer) Painter {
	return Painter{w: w}
}

func (p Painter) paint(colour, message string) {
	if p.Plain {
		fmt.Fprintln(p.w, message)
		return
	}

	fmt.Fprintln(p.w, colour+message+Reset)
}

func (p Painter) Errorln(message string) {
	p.paint(RedColour, message)
}

func (p Painter) Successln(message string) {
	p.paint(GreenColour, message)
}

func (p Painter) Warningln(message string) {
	p.paint(YellowColour, message)
}

func (p Painter) Magentaln(message string) {
	p.paint(MagentaColour, message)
}

func (p Painter) Blueln(message string) {
	p.paint(BlueColour, message)
}

func (p Painter) Cyanln(message string) {
	p.paint(CyanColour, message)
}

func (p Painter) Grayln(message string) {
	p.paint(GrayColour, message)
}

func (p Painter) Println(message string) {
	fmt.Fprintln(p.w, message)
}
