// Package bibdb ingests bibliographic databases written in the BibTeX
// family of formats.
//
// Parse reads a database into a bib.Database, resolving @string
// variables and value concatenation as it goes. Items hand out their
// parsed authors through Item.Authors, and UTF8Decode/UTF8Encode map
// between non-ASCII code points and their LaTeX spellings.
package bibdb

import (
	"github.com/bibtools/bibdb/bib"
	"github.com/bibtools/bibdb/latex"
	"github.com/bibtools/bibdb/parser"
)

// CiteKey is the citation key for an entry, like the "foo" in:
//
//	@article{ foo }
type CiteKey = string

// ItemType is the type of an entry. An "@article" entry is represented as
// "article". String alias to allow for unknown types.
type ItemType = string

//goland:noinspection GoUnusedConst
const (
	ItemArticle       ItemType = "article"
	ItemBook          ItemType = "book"
	ItemBooklet       ItemType = "booklet"
	ItemInBook        ItemType = "inbook"
	ItemInCollection  ItemType = "incollection"
	ItemInProceedings ItemType = "inproceedings"
	ItemManual        ItemType = "manual"
	ItemMastersThesis ItemType = "mastersthesis"
	ItemMisc          ItemType = "misc"
	ItemPhDThesis     ItemType = "phdthesis"
	ItemProceedings   ItemType = "proceedings"
	ItemTechReport    ItemType = "techreport"
	ItemUnpublished   ItemType = "unpublished"
)

// Field is a single field name in an Item.
type Field = string

//goland:noinspection GoUnusedConst
const (
	FieldAddress      Field = "address"
	FieldAnnote       Field = "annote"
	FieldAuthor       Field = "author"
	FieldBookTitle    Field = "booktitle"
	FieldChapter      Field = "chapter"
	FieldDOI          Field = "doi"
	FieldCrossref     Field = "crossref"
	FieldEdition      Field = "edition"
	FieldEditor       Field = "editor"
	FieldHowPublished Field = "howpublished"
	FieldInstitution  Field = "institution"
	FieldJournal      Field = "journal"
	FieldKey          Field = "key"
	FieldMonth        Field = "month"
	FieldNote         Field = "note"
	FieldNumber       Field = "number"
	FieldOrganization Field = "organization"
	FieldPages        Field = "pages"
	FieldPublisher    Field = "publisher"
	FieldSchool       Field = "school"
	FieldSeries       Field = "series"
	FieldTitle        Field = "title"
	FieldType         Field = "type"
	FieldVolume       Field = "volume"
	FieldYear         Field = "year"
)

// Parse parses a bibtex database. The src parameter must be a string,
// []byte, or io.Reader. It returns the database and the string-variable
// table its @string entries defined; on a syntax error both are nil.
func Parse(src interface{}) (*bib.Database, bib.StringTable, error) {
	return parser.Parse(src)
}

// UTF8Decode replaces code points that have a LaTeX spelling in the
// built-in table with that spelling. Unmapped runes pass through.
func UTF8Decode(s string) string {
	return latex.Decode(s)
}

// UTF8Encode replaces LaTeX macros known to the built-in table with
// their code point. Unknown macros pass through verbatim.
func UTF8Encode(s string) (string, error) {
	return latex.Encode(s)
}
