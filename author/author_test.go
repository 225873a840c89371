package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func one(t *testing.T, src string) Author {
	t.Helper()
	authors, err := NewParser(src).Authors()
	require.NoError(t, err)
	require.Len(t, authors, 1)
	return authors[0]
}

func TestAuthors_naturalForm(t *testing.T) {
	tests := []struct {
		src  string
		want Author
	}{
		{"Last", Author{Last: "Last"}},
		{"last", Author{Last: "last"}},
		{"First Last", Author{First: "First", Last: "Last"}},
		{"First last", Author{First: "First", Last: "last"}},
		{"First von Last", Author{First: "First", Von: "von", Last: "Last"}},
		{"Jean-Paul Sartre", Author{First: "Jean-Paul", Last: "Sartre"}},
		{"Jean de la fontaine", Author{First: "Jean", Von: "de la", Last: "fontaine"}},
		{"Jean De La fontaine", Author{First: "Jean De La", Last: "fontaine"}},
		{"jean de la fontaine", Author{Von: "jean de la", Last: "fontaine"}},
		{
			"Charles Louis Xavier Joseph de la Vallee Poussin",
			Author{First: "Charles Louis Xavier Joseph", Von: "de la", Last: "Vallee Poussin"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, one(t, tt.src))
		})
	}
}

func TestAuthors_commaForm(t *testing.T) {
	tests := []struct {
		src  string
		want Author
	}{
		{"de Belgique, Phillipe", Author{First: "Phillipe", Von: "de", Last: "Belgique"}},
		{"Last, First", Author{First: "First", Last: "Last"}},
		{"von Beethoven, Ludwig", Author{First: "Ludwig", Von: "von", Last: "Beethoven"}},
		{"van der Berg, Jan", Author{First: "Jan", Von: "van der", Last: "Berg"}},
		{"Smith, Jr, John", Author{First: "John", Last: "Smith", Jr: "Jr"}},
		{"de la Cruz, III, Maria", Author{First: "Maria", Von: "de la", Last: "Cruz", Jr: "III"}},
		// empty groups come out as empty parts
		{"Last,", Author{Last: "Last"}},
		{"Last, ,", Author{Last: "Last"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, one(t, tt.src))
		})
	}
}

func TestAuthors_multiple(t *testing.T) {
	authors, err := NewParser("First Last and von Beethoven, Ludwig and Name").Authors()
	require.NoError(t, err)
	want := []Author{
		{First: "First", Last: "Last"},
		{First: "Ludwig", Von: "von", Last: "Beethoven"},
		{Last: "Name"},
	}
	assert.Equal(t, want, authors)
}

func TestAuthors_separatorIsWholeWordCaseInsensitive(t *testing.T) {
	authors, err := NewParser("Anderson AND Brand").Authors()
	require.NoError(t, err)
	want := []Author{
		{Last: "Anderson"},
		{Last: "Brand"},
	}
	assert.Equal(t, want, authors)
}

func TestAuthors_trailingSeparator(t *testing.T) {
	authors, err := NewParser("Smith and ").Authors()
	require.NoError(t, err)
	assert.Equal(t, []Author{{Last: "Smith"}}, authors)
}

func TestAuthors_braceGroups(t *testing.T) {
	tests := []struct {
		src  string
		want Author
	}{
		// a braced word is caseless: it extends the surrounding part
		{"{von Beethoven}, Ludwig", Author{First: "Ludwig", Last: "{von Beethoven}"}},
		{"{Barnes} {and} {Noble}", Author{First: "{Barnes} {and}", Last: "{Noble}"}},
		// special characters take the case of their argument
		{"{\\'E}douard Manet", Author{First: "{\\'E}douard", Last: "Manet"}},
		{"{\\'e}douard manet", Author{Von: "{\\'e}douard", Last: "manet"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, one(t, tt.src))
		})
	}
}

func TestAuthors_errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		sub  string
	}{
		{"too many commas", "a, b, c, d", "too many commas"},
		{"double separator", "Last3 and and Last4", "empty author name"},
		{"unmatched brace", "{Jean de la", "unmatched '{'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(tt.src).Authors()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.sub)
		})
	}
}

func TestAuthors_empty(t *testing.T) {
	authors, err := NewParser("").Authors()
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestAuthor_String(t *testing.T) {
	tests := []struct {
		a    Author
		want string
	}{
		{Author{First: "Jean", Von: "de la", Last: "fontaine"}, "de la fontaine, Jean"},
		{Author{First: "John", Last: "Smith", Jr: "Jr"}, "Smith, Jr, John"},
		{Author{Last: "Last"}, "Last, "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.String())
	}
}

func TestSpecialCharCap(t *testing.T) {
	tests := []struct {
		lit     string
		want    capCode
		decided bool
	}{
		{`{\'E}`, capUpper, true},
		{`{\'e}`, capLower, true},
		{`{\relax Ph}`, capUpper, true},
		{`{\relax 3}`, capLower, true},
		{`{\,}`, capCaseless, false},
	}
	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			c, ok := specialCharCap(tt.lit)
			assert.Equal(t, tt.decided, ok)
			assert.Equal(t, tt.want, c)
		})
	}
}
