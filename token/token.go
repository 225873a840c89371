// Package token defines constants representing the lexical tokens of a
// bibtex database and basic operations on tokens (printing, predicates).
package token

import "strconv"

// References
// - http://www.bibtex.org/Format/
// - http://mirror.utexas.edu/ctan/biblio/bibtex/base/btxdoc.pdf
// - http://ctan.math.illinois.edu/info/bibtex/tamethebeast/ttb_en.pdf

// Token is the set of lexical tokens for a bibtex database. The scanner
// works at the character level: every rune that is not one of the symbol
// or whitespace tokens below is returned as a Char token carrying the rune
// as its literal.
type Token int

const (
	Illegal Token = iota
	EOF

	// Whitespace. Newline is kept distinct from Space because an @comment
	// body runs to the end of its line.
	whitespaceBegin
	Space   // a run of ' ' or '\t'
	Newline // '\n', '\r' or "\r\n"
	whitespaceEnd

	// Operators and delimiters.
	operatorBegin
	At          // @
	LBrace      // {
	RBrace      // }
	LParen      // (
	RParen      // )
	DoubleQuote // "
	Comma       // ,
	Assign      // =
	Concat      // #
	operatorEnd

	Char // any other single rune
)

var tokens = [...]string{
	Illegal: "Illegal",
	EOF:     "EOF",

	Space:   "Space",
	Newline: "Newline",

	At:          "At",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LParen:      "LParen",
	RParen:      "RParen",
	DoubleQuote: "DoubleQuote",
	Comma:       "Comma",
	Assign:      "Assign",
	Concat:      "Concat",

	Char: "Char",
}

func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// IsWhitespace returns true for the whitespace tokens Space and Newline.
func (tok Token) IsWhitespace() bool {
	return whitespaceBegin < tok && tok < whitespaceEnd
}

// IsOperator returns true for tokens corresponding to operators and
// delimiters. It returns false otherwise.
func (tok Token) IsOperator() bool {
	return operatorBegin < tok && tok < operatorEnd
}
