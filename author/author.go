// Package author parses bibtex author-name strings into their canonical
// parts (first, von, last, jr).
//
// The rules follow the established bibtex name grammar: words carry a
// capitalization code, commas split a name record into one to three
// groups, and the word "and" separates records. See
// http://ctan.math.illinois.edu/info/bibtex/tamethebeast/ttb_en.pdf.
package author

import (
	"fmt"
	"strings"
	"unicode"
)

const nameSep = "and"

// Author is one parsed name. Von and Jr are empty when the name has no
// such part.
type Author struct {
	First string
	Von   string
	Last  string
	Jr    string
}

// String renders the name in the canonical "von Last, Jr, First" shape.
func (a Author) String() string {
	sb := strings.Builder{}
	if a.Von != "" {
		sb.WriteString(a.Von)
		sb.WriteByte(' ')
	}
	sb.WriteString(a.Last)
	sb.WriteString(", ")
	if a.Jr != "" {
		sb.WriteString(a.Jr)
		sb.WriteString(", ")
	}
	sb.WriteString(a.First)
	return sb.String()
}

// Capitalization code of a word: caseless, lowercase or uppercase. Used
// solely for splitting a name into its parts.
type capCode int

const (
	capCaseless capCode = -1
	capLower    capCode = 0
	capUpper    capCode = 1
)

// Parser splits an "and"-separated author string into Authors.
type Parser struct {
	scan scanner

	tok tokKind
	lit string
	err error
}

// NewParser returns a parser over one author field value.
func NewParser(src string) *Parser {
	p := &Parser{}
	p.scan.init(src)
	p.next()
	return p
}

func (p *Parser) next() {
	_, p.tok, p.lit = p.scan.scan()
	if p.scan.err != nil && p.err == nil {
		p.err = p.scan.err
	}
}

func (p *Parser) skipSpaces() {
	for p.tok == tokSpace {
		p.next()
	}
}

// Authors parses the whole input and returns the name records in source
// order. A record with more than two commas, a record that is empty
// between two separators, or unmatched braces anywhere are errors.
func (p *Parser) Authors() ([]Author, error) {
	authors := []Author{}
	for {
		p.skipSpaces()
		if p.err != nil {
			return nil, p.err
		}
		if p.tok == tokEOF {
			return authors, nil
		}
		a, empty, err := p.record()
		if err != nil {
			return nil, err
		}
		if empty {
			return nil, fmt.Errorf("empty author name")
		}
		authors = append(authors, a)
	}
}

// record consumes one author record, up to and including its "and"
// separator or end of input. empty reports a record with no words and no
// commas, which only a stray separator produces.
func (p *Parser) record() (a Author, empty bool, err error) {
	var words []string
	var caps []capCode
	var commas []int // count of words seen before each comma

	for {
		if p.err != nil {
			return Author{}, false, p.err
		}
		switch p.tok {
		case tokLetter, tokBraced, tokSpecial:
			w, c := p.word()
			if strings.EqualFold(w, nameSep) {
				return p.assemble(words, caps, commas)
			}
			words = append(words, w)
			caps = append(caps, c)
		case tokComma:
			commas = append(commas, len(words))
			p.next()
		case tokSpace:
			p.next()
		case tokEOF:
			return p.assemble(words, caps, commas)
		}
	}
}

// word assembles a maximal run of letter, braced-item and
// special-character tokens and determines its capitalization: the first
// deciding token wins. Brace groups decide nothing; special characters
// look at their argument; plain runes decide by their first alphabetic
// character.
func (p *Parser) word() (string, capCode) {
	c := capCaseless
	decided := false
	sb := strings.Builder{}
	for p.tok == tokLetter || p.tok == tokBraced || p.tok == tokSpecial {
		if !decided {
			switch p.tok {
			case tokLetter:
				r := []rune(p.lit)[0]
				if unicode.IsUpper(r) || unicode.IsTitle(r) {
					c = capUpper
					decided = true
				} else if unicode.IsLower(r) {
					c = capLower
					decided = true
				}
			case tokSpecial:
				if sc, ok := specialCharCap(p.lit); ok {
					c = sc
					decided = true
				}
			}
		}
		sb.WriteString(p.lit)
		p.next()
	}
	return sb.String(), c
}

// specialCharCap determines the capitalization of a special character,
// a brace group opening with a backslash like {\'e} or {\relax Ph}. The
// case comes from the first letter or digit after the macro name; digits
// count as lowercase. ok is false when no such character exists.
func specialCharCap(lit string) (capCode, bool) {
	rs := []rune(lit)
	i := 2 // past "{\"

	// skip an alphabetic macro name
	if i < len(rs) && unicode.IsLetter(rs[i]) {
		for i < len(rs) && unicode.IsLetter(rs[i]) {
			i++
		}
	} else if i < len(rs) {
		i++ // single-character macro name
	}

	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsDigit(r):
			return capLower, true
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			return capUpper, true
		case unicode.IsLower(r):
			return capLower, true
		}
		i++
	}
	return capCaseless, false
}

func (p *Parser) assemble(words []string, caps []capCode, commas []int) (Author, bool, error) {
	if len(commas) > 2 {
		return Author{}, false, fmt.Errorf("too many commas in author name %q", strings.Join(words, " "))
	}
	if len(words) == 0 && len(commas) == 0 {
		return Author{}, true, nil
	}
	if len(commas) == 0 {
		return naturalForm(words, caps), false, nil
	}
	return commaForm(words, caps, commas), false, nil
}

// naturalForm splits a no-comma record "First von Last": the longest
// uppercase-or-caseless prefix that leaves out the final word is the
// first name; the final word, together with the uppercase-or-caseless
// words directly before it that the first name did not take, is the last
// name; whatever lies between is the von part.
func naturalForm(words []string, caps []capCode) Author {
	n := len(words)

	i := 0
	for i < n-1 && caps[i] != capLower {
		i++
	}

	lastStart := n - 1
	for lastStart-1 >= i && caps[lastStart-1] != capLower {
		lastStart--
	}

	return Author{
		First: strings.Join(words[:i], " "),
		Von:   strings.Join(words[i:lastStart], " "),
		Last:  strings.Join(words[lastStart:], " "),
	}
}

// commaForm splits "von Last, First" or "von Last, Jr, First". Within the
// first group everything up to and including the rightmost lowercase word
// is the von part.
func commaForm(words []string, caps []capCode, commas []int) Author {
	g1 := words[:commas[0]]

	vonEnd := 0
	for i, c := range caps[:commas[0]] {
		if c == capLower {
			vonEnd = i + 1
		}
	}

	a := Author{
		Von:  strings.Join(g1[:vonEnd], " "),
		Last: strings.Join(g1[vonEnd:], " "),
	}
	if len(commas) == 1 {
		a.First = strings.Join(words[commas[0]:], " ")
	} else {
		a.Jr = strings.Join(words[commas[0]:commas[1]], " ")
		a.First = strings.Join(words[commas[1]:], " ")
	}
	return a
}
