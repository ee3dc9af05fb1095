package gcodegen

import (
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"strconv"
)

var ErrNotANumber = errors.New("not a number")

// Scanner reads whitespace separated tokens: single command characters and numbers.
// Reads block until the underlying ByteScanner has input.
type Scanner struct {
	Scanner io.ByteScanner

	line int
}

func (s *Scanner) scan(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			err = r.(error)
		}
	}()

	fn()
	return nil
}

func (s *Scanner) error(err error) {
	panic(fmt.Errorf("line %d: %w", s.line+1, err))
}

func (s *Scanner) readByte() byte {
	b, err := s.Scanner.ReadByte()
	if err != nil {
		if err == io.EOF {
			panic(err)
		}
		s.error(err)
	}
	return b
}

func (s *Scanner) unreadByte() {
	err := s.Scanner.UnreadByte()
	if err != nil {
		s.error(err)
	}
}

func whitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func (s *Scanner) skipWhitespace() {
	for {
		b := s.readByte()
		if b == '\n' {
			s.line += 1
		} else if !whitespaceByte(b) {
			break
		}
	}
	s.unreadByte()
}

// Command returns the next non-whitespace character; it returns io.EOF at the end
// of the input.
func (s *Scanner) Command() (byte, error) {
	var c byte
	err := s.scan(func() {
		s.skipWhitespace()
		c = s.readByte()
	})
	return c, err
}

// Token returns the next whitespace delimited token.
func (s *Scanner) Token() (string, error) {
	var tok []byte
	err := s.scan(func() {
		s.skipWhitespace()
		tok = append(tok, s.readByte())
		for {
			b, err := s.Scanner.ReadByte()
			if err == io.EOF {
				return
			} else if err != nil {
				s.error(err)
			}
			if whitespaceByte(b) {
				s.unreadByte()
				return
			}
			tok = append(tok, b)
		}
	})
	return string(tok), err
}

// Number reads the next token as a finite number. A token that is not one is
// consumed and reported with an error wrapping ErrNotANumber.
func (s *Scanner) Number() (float64, string, error) {
	tok, err := s.Token()
	if err != nil {
		return 0, tok, err
	}
	num, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, tok, fmt.Errorf("line %d: %w: %q", s.line+1, ErrNotANumber, tok)
	}
	return num, tok, nil
}
