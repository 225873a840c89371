// Package scanner implements a scanner for bibtex database text. It takes
// a []byte as a source which can then be tokenized through repeated calls
// to the Scan method.
//
// The scanner works at the character level: the grammar of a bibtex
// database has character terminals, so everything that is not a delimiter
// or whitespace comes back as a one-rune Char token and the parser
// assembles identifiers, keys and values itself.
package scanner

import (
	"fmt"
	gotok "go/token"
	"unicode/utf8"

	"github.com/bibtools/bibdb/token"
)

const eof = -1

const bom = 0xFEFF // byte order mark, only permitted as the first character

// An ErrorHandler may be provided to Scanner.Init. If a syntax error is
// encountered and a handler was installed, the handler is called with a
// position and an error message. The position points to the beginning of
// the offending token.
type ErrorHandler func(pos gotok.Position, msg string)

// A Scanner holds the scanner's internal state while processing a given
// text. It can be allocated as part of another data structure but must be
// initialized via Init before use.
type Scanner struct {
	// immutable state
	file *gotok.File  // source file handle
	src  []byte       // source
	err  ErrorHandler // error reporting; or nil

	// scanning state
	ch         rune // current character
	offset     int  // character offset
	rdOffset   int  // reading offset (position after current character)
	lineOffset int  // current line offset

	// public state - ok to modify
	ErrorCount int // number of errors encountered
}

// Read the next Unicode char into s.ch.
// s.ch < 0 means end-of-file.
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal character NUL")
		case r >= utf8.RuneSelf:
			// not ASCII
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding")
			} else if r == bom && s.offset > 0 {
				s.error(s.offset, "illegal byte order mark")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		s.ch = eof
	}
}

func (s *Scanner) error(offs int, msg string) {
	if s.err != nil {
		s.err(s.file.Position(s.file.Pos(offs)), msg)
	}
	s.ErrorCount++
}

// Init prepares the scanner s to tokenize the text src by setting the
// scanner at the beginning of src. The scanner uses the file set file
// for position information, and it adds line information for each line.
// It is ok to re-use the same file when re-scanning the same file as
// line information which is already present is ignored. Init causes a
// panic if the file size does not match the src size.
//
// Calls to Scan will invoke the error handler err if they encounter a
// syntax error and err is not nil. Also, for each error encountered,
// the Scanner field ErrorCount is incremented by one.
//
// Note that Init may call err if there is an error in the first character
// of the file.
func (s *Scanner) Init(file *gotok.File, src []byte, err ErrorHandler) {
	// Explicitly initialize all fields since a scanner may be reused.
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = err

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.lineOffset = 0
	s.ErrorCount = 0

	s.next()
	if s.ch == bom {
		s.next() // ignore BOM at the file beginning
	}
}

func lower(ch rune) rune { return ('a' - 'A') | ch } // returns lower-case ch if ch is an ASCII letter

// IsAsciiLetter reports whether ch is an ASCII letter.
func IsAsciiLetter(ch rune) bool { return 'a' <= lower(ch) && lower(ch) <= 'z' }

// IsDecimal reports whether ch is an ASCII digit.
func IsDecimal(ch rune) bool { return '0' <= ch && ch <= '9' }

// IsIdent reports whether ch may appear in an identifier, such as an entry
// type or a string-variable name.
func IsIdent(ch rune) bool {
	return IsAsciiLetter(ch) || IsDecimal(ch) || ch == '_'
}

// IsIdentBegin reports whether ch may start an identifier. Identifiers
// cannot start with a digit.
func IsIdentBegin(ch rune) bool {
	return IsAsciiLetter(ch) || ch == '_'
}

// IsKey reports whether ch is a valid cite-key or field-key character.
// Keys are wider than identifiers: they admit digits anywhere plus '-'
// and ':'.
func IsKey(ch rune) bool {
	return IsIdent(ch) || ch == '-' || ch == ':'
}

func (s *Scanner) scanSpaceRun() string {
	offs := s.offset
	for s.ch == ' ' || s.ch == '\t' {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

// Scan scans the next token and returns the token position, the token, and
// its literal string if applicable. The source end is indicated by
// token.EOF.
//
// Space tokens cover a maximal run of spaces and tabs; Newline covers a
// single line terminator ('\n', '\r' or "\r\n"). A Char token carries the
// rune as its literal. Symbol tokens have an empty literal.
func (s *Scanner) Scan() (pos gotok.Pos, tok token.Token, lit string) {
	pos = s.file.Pos(s.offset)

	switch ch := s.ch; ch {
	case eof:
		tok = token.EOF
	case ' ', '\t':
		tok = token.Space
		lit = s.scanSpaceRun()
	case '\n':
		tok = token.Newline
		lit = "\n"
		s.next()
	case '\r':
		tok = token.Newline
		s.next()
		if s.ch == '\n' {
			s.next()
			lit = "\r\n"
		} else {
			lit = "\r"
		}
	case '@':
		tok = token.At
		s.next()
	case '{':
		tok = token.LBrace
		s.next()
	case '}':
		tok = token.RBrace
		s.next()
	case '(':
		tok = token.LParen
		s.next()
	case ')':
		tok = token.RParen
		s.next()
	case '"':
		tok = token.DoubleQuote
		s.next()
	case ',':
		tok = token.Comma
		s.next()
	case '=':
		tok = token.Assign
		s.next()
	case '#':
		tok = token.Concat
		s.next()
	default:
		tok = token.Char
		lit = string(ch)
		s.next()
	}
	return
}
