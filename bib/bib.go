// Package bib defines the in-memory model of a bibtex database: items,
// the database keyed by cite key, and the string-variable table. The
// model is pure data; parsing lives in the parser package.
package bib

import (
	"strings"

	"github.com/bibtools/bibdb/author"
)

// DefaultAuthorFields is the candidate field list scanned by
// Item.Authors when the caller supplies none.
var DefaultAuthorFields = []string{"author", "Author", "AUTHOR"}

// AsciiLower lower-cases ASCII letters in s. Non-ASCII runes pass through
// unchanged. Cite-key comparison must not depend on the host locale, so
// strings.ToLower is deliberately not used.
func AsciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// Item is one bibliography entry: @type{key, field = value, ...}.
//
// The cite key keeps its original case; the item type is lower-cased.
// Field names keep the case they had in the source and stay unique within
// the item; assigning an existing name overwrites its value in place.
type Item struct {
	CiteKey string
	Type    string

	names  []string
	fields map[string]string
}

// NewItem returns an empty item. The type is lower-cased with a
// locale-independent ASCII fold.
func NewItem(citeKey, itemType string) *Item {
	return &Item{
		CiteKey: citeKey,
		Type:    AsciiLower(itemType),
		fields:  make(map[string]string, 8),
	}
}

// Set assigns a field value. A name that already exists is overwritten,
// keeping its original position; a new name is appended. Names are
// case-sensitive: "author" and "Author" are distinct fields.
func (it *Item) Set(name, value string) {
	if _, ok := it.fields[name]; !ok {
		it.names = append(it.names, name)
	}
	it.fields[name] = value
}

// Get returns a field value by exact-case name.
func (it *Item) Get(name string) (string, bool) {
	v, ok := it.fields[name]
	return v, ok
}

// Has reports whether the field exists, by exact-case name.
func (it *Item) Has(name string) bool {
	_, ok := it.fields[name]
	return ok
}

// Names returns the field names in insertion order.
func (it *Item) Names() []string {
	return it.names
}

// Authors parses the item's author field. The candidate fields are
// scanned in order and the first one present is parsed; with no
// candidates the default author/Author/AUTHOR list applies. Lookup is
// exact-case, so the candidate list decides case sensitivity. An item
// with none of the fields yields (nil, nil).
func (it *Item) Authors(fields ...string) ([]author.Author, error) {
	if len(fields) == 0 {
		fields = DefaultAuthorFields
	}
	for _, f := range fields {
		if v, ok := it.fields[f]; ok {
			return author.NewParser(v).Authors()
		}
	}
	return nil, nil
}

// String renders the item in canonical form:
//
//	@type{key,
//	  field = {value},
//	  field = {value}
//	}
//
// Values always come out brace-delimited, whatever delimiter the source
// used.
func (it *Item) String() string {
	sb := strings.Builder{}
	sb.Grow(64)
	sb.WriteByte('@')
	sb.WriteString(it.Type)
	sb.WriteByte('{')
	sb.WriteString(it.CiteKey)
	sb.WriteByte(',')
	for i, name := range it.names {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("\n  ")
		sb.WriteString(name)
		sb.WriteString(" = {")
		sb.WriteString(it.fields[name])
		sb.WriteByte('}')
	}
	sb.WriteString("\n}")
	return sb.String()
}

// StringTable maps @string placeholders to their resolved values. Values
// are fully resolved at definition time; the table belongs to the parser
// that produced it.
type StringTable map[string]string

// Database holds items keyed by the ASCII-lower-cased cite key, iterable
// in insertion order.
type Database struct {
	items map[string]*Item
	keys  []string // lower-cased, insertion order
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{items: make(map[string]*Item, 16)}
}

// Add inserts an item keyed by its lower-cased cite key. A duplicate key
// replaces the earlier item but keeps its position.
func (db *Database) Add(it *Item) {
	k := AsciiLower(it.CiteKey)
	if _, ok := db.items[k]; !ok {
		db.keys = append(db.keys, k)
	}
	db.items[k] = it
}

// Lookup returns the item for a cite key. Lookup is case-insensitive.
func (db *Database) Lookup(citeKey string) (*Item, bool) {
	it, ok := db.items[AsciiLower(citeKey)]
	return it, ok
}

// Contains reports whether a cite key exists, case-insensitively.
func (db *Database) Contains(citeKey string) bool {
	_, ok := db.items[AsciiLower(citeKey)]
	return ok
}

// Len returns the number of items.
func (db *Database) Len() int {
	return len(db.keys)
}

// Items returns the items in insertion order.
func (db *Database) Items() []*Item {
	out := make([]*Item, 0, len(db.keys))
	for _, k := range db.keys {
		out = append(out, db.items[k])
	}
	return out
}

// String renders every item in canonical form, each followed by a
// newline.
func (db *Database) String() string {
	sb := strings.Builder{}
	for _, k := range db.keys {
		sb.WriteString(db.items[k].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
