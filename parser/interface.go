// This file contains the exported entry points for invoking the parser.
package parser

import (
	"bytes"
	"errors"
	gotok "go/token"
	"io"
	"os"

	"github.com/bibtools/bibdb/bib"
)

// If src != nil, readSource converts src to a []byte if possible;
// otherwise it returns an error. If src == nil, readSource returns
// the result of reading the file specified by filename.
func readSource(filename string, src interface{}) ([]byte, error) {
	if src != nil {
		switch s := src.(type) {
		case string:
			return []byte(s), nil
		case []byte:
			return s, nil
		case *bytes.Buffer:
			// is io.Reader, but src is already available in []byte form
			if s != nil {
				return s.Bytes(), nil
			}
		case io.Reader:
			return io.ReadAll(s)
		}
		return nil, errors.New("invalid source")
	}
	return os.ReadFile(filename)
}

// Parse parses a bibtex database and returns the database together with
// the string-variable table populated by its @string entries. The src
// parameter must be a string, []byte, or io.Reader.
//
// A syntax error aborts the parse: the database and table are nil and the
// error reports the position and, where known, the enclosing entry's cite
// key. Partial results are never returned.
func Parse(src interface{}) (*bib.Database, bib.StringTable, error) {
	return ParseFile(gotok.NewFileSet(), "", src)
}

// ParseFile parses the source text of a single bibtex database and
// returns the resulting database and string table.
//
// If src != nil, ParseFile parses the source from src and the filename is
// only used when recording position information. The type of the argument
// for the src parameter must be string, []byte, or io.Reader.
// If src == nil, ParseFile parses the file specified by filename.
//
// Position information is recorded in the file set fset, which must not
// be nil.
func ParseFile(fset *gotok.FileSet, filename string, src interface{}) (db *bib.Database, strs bib.StringTable, err error) {
	if fset == nil {
		panic("parser.ParseFile: no token.FileSet provided (fset == nil)")
	}

	// get source
	text, err := readSource(filename, src)
	if err != nil {
		return nil, nil, err
	}

	var p parser
	defer func() {
		if e := recover(); e != nil {
			// resume same panic if it's not a bailout
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
		}

		p.errors.Sort()
		err = p.errors.Err()
		if err != nil {
			db, strs = nil, nil
		}
	}()

	// parse source
	p.init(fset, filename, text)
	p.parseFile()

	db, strs = p.db, p.strs
	return
}
