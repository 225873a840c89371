package parser

import (
	"fmt"
	goscan "go/scanner"
	gotok "go/token"
	"strings"
	"unicode/utf8"

	"github.com/bibtools/bibdb/bib"
	"github.com/bibtools/bibdb/scanner"
	"github.com/bibtools/bibdb/token"
)

// The parser structure holds the parser's internal state.
type parser struct {
	file    *gotok.File
	errors  goscan.ErrorList
	scanner scanner.Scanner

	// Next token
	pos gotok.Pos   // token position
	tok token.Token // one token look-ahead
	lit string      // token literal

	// Parse products
	db   *bib.Database
	strs bib.StringTable

	// Cite key of the entry being parsed, for error context.
	entryKey string
}

func (p *parser) init(fset *gotok.FileSet, filename string, src []byte) {
	p.file = fset.AddFile(filename, -1, len(src))
	eh := func(pos gotok.Position, msg string) {
		p.errors.Add(pos, msg)
		panic(bailout{})
	}
	p.scanner.Init(p.file, src, eh)

	p.db = bib.NewDatabase()
	p.strs = make(bib.StringTable)

	p.next()
}

// A bailout panic is raised to indicate early termination. Syntax errors
// are fatal for the current parse; no recovery is attempted.
type bailout struct{}

func (p *parser) next() {
	p.pos, p.tok, p.lit = p.scanner.Scan()
}

func (p *parser) error(pos gotok.Pos, msg string) {
	if p.entryKey != "" {
		msg = fmt.Sprintf("entry %q: %s", p.entryKey, msg)
	}
	p.errors.Add(p.file.Position(pos), msg)
	panic(bailout{})
}

func (p *parser) errorExpected(pos gotok.Pos, msg string) {
	msg = "expected " + msg
	if pos == p.pos {
		// the error happened at the current position;
		// make the error message more specific
		switch {
		case p.tok == token.EOF:
			msg += ", found end of input"
		case p.tok == token.Char:
			msg += ", found " + fmt.Sprintf("%q", p.lit)
		default:
			msg += ", found '" + p.tok.String() + "'"
		}
	}
	p.error(pos, msg)
}

func (p *parser) expect(tok token.Token) gotok.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")
	}
	p.next() // make progress
	return pos
}

// skipWhitespace advances past spaces and newlines.
func (p *parser) skipWhitespace() {
	for p.tok.IsWhitespace() {
		p.next()
	}
}

// skipUntilEntry consumes everything up to the next '@' or end of input.
// Text between entries with no '@' in it is not part of the database.
func (p *parser) skipUntilEntry() {
	for p.tok != token.At && p.tok != token.EOF {
		p.next()
	}
}

// skipRestOfLine consumes up to, but not including, the next newline or
// end of input. Used for @comment bodies, which are not parsed further.
func (p *parser) skipRestOfLine() {
	for p.tok != token.Newline && p.tok != token.EOF {
		p.next()
	}
}

func (p *parser) charRune() rune {
	r, _ := utf8.DecodeRuneInString(p.lit)
	return r
}

// tokenText returns the source text of the current token, for accumulating
// value pieces.
func (p *parser) tokenText() string {
	switch p.tok {
	case token.Space, token.Newline, token.Char:
		return p.lit
	case token.At:
		return "@"
	case token.LBrace:
		return "{"
	case token.RBrace:
		return "}"
	case token.LParen:
		return "("
	case token.RParen:
		return ")"
	case token.DoubleQuote:
		return `"`
	case token.Comma:
		return ","
	case token.Assign:
		return "="
	case token.Concat:
		return "#"
	}
	return ""
}

// parseIdentifier reads an identifier:
//
//	identifier := [A-Za-z_][A-Za-z0-9_]*
func (p *parser) parseIdentifier() string {
	if p.tok != token.Char || !scanner.IsIdentBegin(p.charRune()) {
		p.errorExpected(p.pos, "identifier")
	}
	sb := strings.Builder{}
	sb.Grow(8)
	for p.tok == token.Char && scanner.IsIdent(p.charRune()) {
		sb.WriteString(p.lit)
		p.next()
	}
	return sb.String()
}

// parseKey reads a cite key or field key:
//
//	key := [A-Za-z0-9_\-:]+
//
// Keys are wider than identifiers; they may start with a digit or ':'.
func (p *parser) parseKey() string {
	if p.tok != token.Char || !scanner.IsKey(p.charRune()) {
		p.errorExpected(p.pos, "key")
	}
	sb := strings.Builder{}
	sb.Grow(16)
	for p.tok == token.Char && scanner.IsKey(p.charRune()) {
		sb.WriteString(p.lit)
		p.next()
	}
	return sb.String()
}

// parseValue reads a value: one or more pieces joined by '#'. The pieces
// concatenate with an empty separator.
//
//	value := piece ( WS? "#" WS? piece )*
func (p *parser) parseValue() string {
	sb := strings.Builder{}
	sb.Grow(16)
	sb.WriteString(p.parsePiece())
	p.skipWhitespace()
	for p.tok == token.Concat {
		p.next()
		p.skipWhitespace()
		sb.WriteString(p.parsePiece())
		p.skipWhitespace()
	}
	return sb.String()
}

// parsePiece reads one value piece: an integer literal, a string-variable
// reference, a brace-delimited string or a quote-delimited string.
func (p *parser) parsePiece() string {
	switch {
	case p.tok == token.Char && scanner.IsDecimal(p.charRune()):
		sb := strings.Builder{}
		for p.tok == token.Char && scanner.IsDecimal(p.charRune()) {
			sb.WriteString(p.lit)
			p.next()
		}
		return sb.String()

	case p.tok == token.Char && scanner.IsIdentBegin(p.charRune()):
		pos := p.pos
		name := p.parseIdentifier()
		v, ok := p.strs[name]
		if !ok {
			p.error(pos, fmt.Sprintf("string variable %q is not defined", name))
		}
		return v

	case p.tok == token.LBrace:
		p.next()
		return p.parseDelimited(token.LBrace)

	case p.tok == token.DoubleQuote:
		p.next()
		return p.parseDelimited(token.DoubleQuote)

	default:
		p.errorExpected(p.pos, "value")
		return ""
	}
}

// parseDelimited reads the body of a brace or quote piece, the opening
// delimiter already consumed. Braces must balance in both forms; a quote
// piece terminates only at a '"' outside any brace group, which is how a
// literal '"' is embedded. Backslashes are ordinary characters at this
// layer.
func (p *parser) parseDelimited(open token.Token) string {
	sb := strings.Builder{}
	sb.Grow(16)
	depth := 0
	if open == token.LBrace {
		depth = 1
	}
	for {
		switch p.tok {
		case token.LBrace:
			depth++
		case token.RBrace:
			if open == token.LBrace && depth == 1 {
				p.next()
				return sb.String()
			}
			if depth == 0 {
				p.error(p.pos, "unmatched '}' in value")
			}
			depth--
		case token.DoubleQuote:
			if open == token.DoubleQuote && depth == 0 {
				p.next()
				return sb.String()
			}
		case token.EOF:
			p.errorExpected(p.pos, "closing delimiter of value")
		}
		sb.WriteString(p.tokenText())
		p.next()
	}
}

// parseStringDef handles the body of a @string entry:
//
//	string_def := identifier WS? "=" WS? value
//
// The value is resolved immediately and recorded in the string table.
func (p *parser) parseStringDef() {
	name := p.parseIdentifier()
	p.skipWhitespace()
	p.expect(token.Assign)
	p.skipWhitespace()
	p.strs[name] = p.parseValue()
}

// parseItem handles the body of a regular entry:
//
//	item_body := cite_key WS? "," WS? ( field ( "," field )* )? ","?
//
// Empty fields between commas and a trailing comma are tolerated. Later
// duplicate field names overwrite earlier ones.
func (p *parser) parseItem(itemType string) *bib.Item {
	key := p.parseKey()
	p.entryKey = key
	it := bib.NewItem(key, itemType)

	p.skipWhitespace()
	p.expect(token.Comma)
	p.skipWhitespace()

	for {
		if p.tok == token.Comma { // empty field, skip
			p.next()
			p.skipWhitespace()
			continue
		}
		if p.tok == token.RBrace || p.tok == token.RParen {
			break
		}

		name := p.parseKey()
		p.skipWhitespace()
		p.expect(token.Assign)
		p.skipWhitespace()
		it.Set(name, p.parseValue())

		p.skipWhitespace()
		if p.tok != token.Comma {
			break
		}
		p.next()
		p.skipWhitespace()
	}
	return it
}

// parseFile reads the whole database:
//
//	database := anything_until_at (entry anything_until_at)* EOS
//	entry    := "@" identifier WS? ( "{" body "}" | "(" body ")" )
//
// An @comment body runs to the end of its line and is discarded. An
// @string body defines a string variable. Everything else is an item.
func (p *parser) parseFile() {
	p.skipUntilEntry()
	for p.tok != token.EOF {
		p.expect(token.At)
		itemType := p.parseIdentifier()

		if bib.AsciiLower(itemType) == "comment" {
			p.skipRestOfLine()
			p.skipUntilEntry()
			continue
		}
		p.skipWhitespace()

		var closing token.Token
		switch p.tok {
		case token.LBrace:
			closing = token.RBrace
		case token.LParen:
			closing = token.RParen
		default:
			p.errorExpected(p.pos, "'{' or '('")
		}
		p.next()
		p.skipWhitespace()

		if bib.AsciiLower(itemType) == "string" {
			p.parseStringDef()
		} else {
			p.db.Add(p.parseItem(itemType))
		}

		p.skipWhitespace()
		p.expect(closing)
		p.entryKey = ""

		p.skipUntilEntry()
	}
}
