package gcodegen

import (
	"fmt"
	"io"
	"strings"
)

// Machine receives motion in the order it is generated. RapidTo is used for
// moves with the tool clear of the material, LinearTo for plunges and cuts.
type Machine interface {
	RapidTo(pos Position, feed float64) error
	LinearTo(pos Position, feed float64) error
}

// Writer is a Machine that writes G1 lines; it also writes the comment lines that
// keep a session transcript a valid program.
type Writer struct {
	w       io.Writer
	lastPos Position
	started bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (wr *Writer) RapidTo(pos Position, feed float64) error {
	return wr.move(pos, feed)
}

func (wr *Writer) LinearTo(pos Position, feed float64) error {
	return wr.move(pos, feed)
}

func (wr *Writer) move(pos Position, feed float64) error {
	x, y, z := Number(pos.X).String(), Number(pos.Y).String(), Number(pos.Z).String()

	var b strings.Builder
	b.WriteString("G1")
	all := !wr.started ||
		(x == Number(wr.lastPos.X).String() && y == Number(wr.lastPos.Y).String() &&
			z == Number(wr.lastPos.Z).String())
	if all || x != Number(wr.lastPos.X).String() {
		b.WriteString(" X" + x)
	}
	if all || y != Number(wr.lastPos.Y).String() {
		b.WriteString(" Y" + y)
	}
	if all || z != Number(wr.lastPos.Z).String() {
		b.WriteString(" Z" + z)
	}
	fmt.Fprintf(&b, " F%s\n", Number(feed))

	_, err := io.WriteString(wr.w, b.String())
	if err != nil {
		return err
	}
	wr.lastPos = pos
	wr.started = true
	return nil
}

// Comment writes one comment line per line of s.
func (wr *Writer) Comment(s string) error {
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			line = ";"
		} else {
			line = "; " + line
		}
		_, err := io.WriteString(wr.w, line+"\n")
		if err != nil {
			return err
		}
	}
	return nil
}

// Blank writes an empty line.
func (wr *Writer) Blank() error {
	_, err := io.WriteString(wr.w, "\n")
	return err
}

// Prompt writes a comment without ending the line, so that input typed at a
// terminal lands inside the comment.
func (wr *Writer) Prompt(s string) error {
	_, err := io.WriteString(wr.w, "; "+s+" ")
	return err
}

// EndPrompt finishes a prompt line, echoing the input that answered it.
func (wr *Writer) EndPrompt(echo string) error {
	_, err := io.WriteString(wr.w, echo+"\n")
	return err
}
