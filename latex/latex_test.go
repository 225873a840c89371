package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, src string) string {
	t.Helper()
	got, err := Encode(src)
	require.NoError(t, err)
	return got
}

func TestEncode_sentence(t *testing.T) {
	got := encode(t, "Cet \\'et\\'e, j'ai \\'et\\'e \\`a la chasse aux m\\^ures")
	assert.Equal(t, "Cet été, j'ai été à la chasse aux mûres", got)
}

func TestEncode_argumentForms(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		// bare character argument after a control symbol
		{`\'e`, "é"},
		{"\\`a", "à"},
		{`\^u`, "û"},
		// braced argument
		{`\'{e}`, "é"},
		{`\c{c}`, "ç"},
		// alphabetic command, mandatory space, single character
		{`\c c`, "ç"},
		{`\v s`, "š"},
		{`\H o`, "ő"},
		// nested macro argument
		{`\'\i`, "í"},
		{`\^\i`, "î"},
		// argument-less commands
		{`\ae`, "æ"},
		{`\oe`, "œ"},
		{`\ss`, "ß"},
		{`\o`, "ø"},
		{`\OE`, "Œ"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, encode(t, tt.src))
		})
	}
}

func TestEncode_unknownMacrosPassThrough(t *testing.T) {
	tests := []string{
		`\url{www.example.com}`, // unknown command: argument left untouched
		`\'q`,                   // known command, unknown argument
		`\c qux`,                // known command, unknown spaced argument
		`\unknown`,
		`\&`,
		`\\`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			assert.Equal(t, src, encode(t, src))
		})
	}
}

func TestEncode_braceElision(t *testing.T) {
	// enclosing braces vanish when the substitution happened
	assert.Equal(t, "é", encode(t, `{\'e}`))
	assert.Equal(t, "été", encode(t, `{\'e}t{\'e}`))
	// no substitution, braces stay
	assert.Equal(t, `{\url}`, encode(t, `{\url}`))
	// substitution not brace-adjacent, braces stay
	assert.Equal(t, "{éx}", encode(t, `{\'ex}`))
}

func TestEncode_braceElisionLaw(t *testing.T) {
	for _, m := range []string{`\'e`, `\c c`, `\ae`, `\'\i`} {
		assert.Equal(t, encode(t, m), encode(t, "{"+m+"}"), "macro %s", m)
	}
}

func TestEncode_plainTextUntouched(t *testing.T) {
	tests := []string{
		"",
		"no macros here",
		"braces {stay} as they are",
		"stray } closer",
		"math $x+y$ and # signs",
	}
	for _, src := range tests {
		assert.Equal(t, src, encode(t, src))
	}
}

func TestEncode_errors(t *testing.T) {
	// unmatched brace in a macro argument
	_, err := Encode(`\'{e`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmatched '{'")

	// alphabetic command without its terminating space
	_, err = Encode(`\c}`)
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	assert.Equal(t, `\'et\'e`, Decode("été"))
	assert.Equal(t, "plain ascii", Decode("plain ascii"))
	assert.Equal(t, `Fran\c cois`, Decode("François"))
}

func TestDecode_unmappedRunesPassThrough(t *testing.T) {
	assert.Equal(t, "日本語", Decode("日本語"))
}

func TestDecode_idempotent(t *testing.T) {
	inputs := []string{
		"été",
		"Der Bär läuft über die Straße",
		"ĄĆĘŁŃÓŚŹŻ ąćęłńóśźż",
		"mixed 日本語 and é",
	}
	for _, in := range inputs {
		once := Decode(in)
		assert.Equal(t, once, Decode(once))
	}
}

// Every table entry must survive the round trip: encoding the spelling
// yields exactly the code point, and decoding the code point yields the
// spelling.
func TestTable_roundTrip(t *testing.T) {
	for cp, spelling := range DecodeTable {
		enc, err := Encode(spelling)
		require.NoError(t, err, "encode %q", spelling)
		assert.Equal(t, string(cp), enc, "encode %q", spelling)
		assert.Equal(t, spelling, Decode(string(cp)), "decode %q", string(cp))
	}
}

func TestCustomMacroTable(t *testing.T) {
	table := MacroTable{
		"star":  {Point: '★'},
		"frac": {Args: map[string]rune{"12": '½'}},
	}
	got, err := NewTransducer(`\star and \frac{12} and \frac{34}`, table).Transform()
	require.NoError(t, err)
	assert.Equal(t, `★ and ½ and \frac{34}`, got)
}
