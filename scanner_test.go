package gcodegen

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

type token struct {
	command bool
	c       byte
	num     float64
	err     error
}

func TestScanner(t *testing.T) {
	cases := []struct {
		s      string
		tokens []token
	}{
		{s: "", tokens: []token{{command: true, err: io.EOF}}},
		{s: "  \n\t", tokens: []token{{command: true, err: io.EOF}}},
		{s: "c 5\n", tokens: []token{
			{command: true, c: 'c'},
			{num: 5},
			{command: true, err: io.EOF},
		}},
		{s: "c5", tokens: []token{
			{command: true, c: 'c'},
			{num: 5},
			{num: 0, err: io.EOF},
		}},
		{s: "r 1.5\n-2e1 o +3 .25", tokens: []token{
			{command: true, c: 'r'},
			{num: 1.5},
			{num: -20},
			{command: true, c: 'o'},
			{num: 3},
			{num: 0.25},
		}},
		{s: "m abc 1", tokens: []token{
			{command: true, c: 'm'},
			{err: ErrNotANumber},
			{num: 1},
		}},
		{s: "NaN inf -Inf 1.2.3", tokens: []token{
			{err: ErrNotANumber},
			{err: ErrNotANumber},
			{err: ErrNotANumber},
			{err: ErrNotANumber},
		}},
	}

	for _, c := range cases {
		s := Scanner{Scanner: bufio.NewReader(strings.NewReader(c.s))}
		for i, tok := range c.tokens {
			if tok.command {
				b, err := s.Command()
				if !errors.Is(err, tok.err) {
					t.Errorf("Command(%q)[%d]: got error %v want %v", c.s, i, err, tok.err)
				} else if err == nil && b != tok.c {
					t.Errorf("Command(%q)[%d]: got %c want %c", c.s, i, b, tok.c)
				}
			} else {
				num, _, err := s.Number()
				if !errors.Is(err, tok.err) {
					t.Errorf("Number(%q)[%d]: got error %v want %v", c.s, i, err, tok.err)
				} else if err == nil && num != tok.num {
					t.Errorf("Number(%q)[%d]: got %v want %v", c.s, i, num, tok.num)
				}
			}
		}
	}
}

func TestScannerLine(t *testing.T) {
	s := Scanner{Scanner: bufio.NewReader(strings.NewReader("c\n\nxyz"))}
	_, err := s.Command()
	if err != nil {
		t.Fatal(err)
	}
	_, tok, err := s.Number()
	if !errors.Is(err, ErrNotANumber) || tok != "xyz" {
		t.Fatalf("Number: got %q %v", tok, err)
	}
	if !strings.HasPrefix(err.Error(), "line 3:") {
		t.Errorf("Number: got error %q; want line 3", err)
	}
}
