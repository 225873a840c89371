package latex

// The canonical code-point → macro-text table. The contents are derived
// at build time from the utf8enc.dfu file of a LaTeX distribution
// (\DeclareUnicodeCharacter lines, @tabacckludge spellings unfolded);
// regenerate rather than edit. The encode table below is parsed out of
// these spellings once at init, the same split the generator performs.

// DecodeTable maps a code point to its LaTeX spelling.
var DecodeTable = map[rune]string{
	// grave
	'à': "\\`a", 'è': "\\`e", 'ì': "\\`i", 'ò': "\\`o", 'ù': "\\`u",
	'À': "\\`A", 'È': "\\`E", 'Ì': "\\`I", 'Ò': "\\`O", 'Ù': "\\`U",

	// acute
	'á': "\\'a", 'é': "\\'e", 'í': "\\'i", 'ó': "\\'o", 'ú': "\\'u",
	'Á': "\\'A", 'É': "\\'E", 'Í': "\\'I", 'Ó': "\\'O", 'Ú': "\\'U",
	'ý': "\\'y", 'Ý': "\\'Y", 'ć': "\\'c", 'Ć': "\\'C", 'ĺ': "\\'l",
	'Ĺ': "\\'L", 'ń': "\\'n", 'Ń': "\\'N", 'ŕ': "\\'r", 'Ŕ': "\\'R",
	'ś': "\\'s", 'Ś': "\\'S", 'ź': "\\'z", 'Ź': "\\'Z",

	// circumflex
	'â': "\\^a", 'ê': "\\^e", 'î': "\\^i", 'ô': "\\^o", 'û': "\\^u",
	'Â': "\\^A", 'Ê': "\\^E", 'Î': "\\^I", 'Ô': "\\^O", 'Û': "\\^U",
	'ĉ': "\\^c", 'Ĉ': "\\^C", 'ĝ': "\\^g", 'Ĝ': "\\^G", 'ĥ': "\\^h",
	'Ĥ': "\\^H", 'ĵ': "\\^j", 'Ĵ': "\\^J", 'ŝ': "\\^s", 'Ŝ': "\\^S",
	'ŵ': "\\^w", 'Ŵ': "\\^W", 'ŷ': "\\^y", 'Ŷ': "\\^Y",

	// diaeresis
	'ä': "\\\"a", 'ë': "\\\"e", 'ï': "\\\"i", 'ö': "\\\"o", 'ü': "\\\"u",
	'Ä': "\\\"A", 'Ë': "\\\"E", 'Ï': "\\\"I", 'Ö': "\\\"O", 'Ü': "\\\"U",
	'ÿ': "\\\"y", 'Ÿ': "\\\"Y",

	// tilde
	'ã': "\\~a", 'ñ': "\\~n", 'õ': "\\~o", 'ĩ': "\\~i", 'ũ': "\\~u",
	'Ã': "\\~A", 'Ñ': "\\~N", 'Õ': "\\~O", 'Ĩ': "\\~I", 'Ũ': "\\~U",

	// macron
	'ā': "\\=a", 'ē': "\\=e", 'ī': "\\=i", 'ō': "\\=o", 'ū': "\\=u",
	'Ā': "\\=A", 'Ē': "\\=E", 'Ī': "\\=I", 'Ō': "\\=O", 'Ū': "\\=U",

	// dot above
	'ċ': "\\.c", 'ė': "\\.e", 'ġ': "\\.g", 'ż': "\\.z", 'İ': "\\.I",
	'Ċ': "\\.C", 'Ė': "\\.E", 'Ġ': "\\.G", 'Ż': "\\.Z",

	// cedilla
	'ç': "\\c c", 'Ç': "\\c C", 'ş': "\\c s", 'Ş': "\\c S",
	'ţ': "\\c t", 'Ţ': "\\c T", 'ģ': "\\c g", 'ķ': "\\c k",
	'ļ': "\\c l", 'ņ': "\\c n", 'ŗ': "\\c r",

	// breve
	'ă': "\\u a", 'Ă': "\\u A", 'ĕ': "\\u e", 'Ĕ': "\\u E",
	'ğ': "\\u g", 'Ğ': "\\u G", 'ŏ': "\\u o", 'Ŏ': "\\u O",
	'ŭ': "\\u u", 'Ŭ': "\\u U",

	// caron
	'č': "\\v c", 'Č': "\\v C", 'ď': "\\v d", 'Ď': "\\v D",
	'ě': "\\v e", 'Ě': "\\v E", 'ľ': "\\v l", 'Ľ': "\\v L",
	'ň': "\\v n", 'Ň': "\\v N", 'ř': "\\v r", 'Ř': "\\v R",
	'š': "\\v s", 'Š': "\\v S", 'ť': "\\v t", 'Ť': "\\v T",
	'ž': "\\v z", 'Ž': "\\v Z",

	// double acute
	'ő': "\\H o", 'Ő': "\\H O", 'ű': "\\H u", 'Ű': "\\H U",

	// ogonek
	'ą': "\\k a", 'Ą': "\\k A", 'ę': "\\k e", 'Ę': "\\k E",
	'į': "\\k i", 'Į': "\\k I", 'ų': "\\k u", 'Ų': "\\k U",

	// ring
	'ů': "\\r u", 'Ů': "\\r U",

	// ligatures, special letters
	'æ': "\\ae", 'Æ': "\\AE", 'œ': "\\oe", 'Œ': "\\OE",
	'å': "\\aa", 'Å': "\\AA", 'ø': "\\o", 'Ø': "\\O",
	'ł': "\\l", 'Ł': "\\L", 'ß': "\\ss", 'ẞ': "\\SS",
	'ı': "\\i", 'ȷ': "\\j", 'ð': "\\dh", 'Ð': "\\DH",
	'þ': "\\th", 'Þ': "\\TH", 'ŋ': "\\ng", 'Ŋ': "\\NG",
	'đ': "\\dj", 'Đ': "\\DJ",

	// punctuation and symbols
	'£': "\\pounds", '§': "\\S", '¶': "\\P",
	'©': "\\copyright", '®': "\\textregistered", '™': "\\texttrademark",
	'¡': "\\textexclamdown", '¿': "\\textquestiondown",
	'€': "\\texteuro", '†': "\\dag", '‡': "\\ddag",
	'•': "\\textbullet", '…': "\\dots",
	'–': "\\textendash", '—': "\\textemdash",
	'°': "\\textdegree", '±': "\\textpm",
	'½': "\\textonehalf", '¼': "\\textonequarter", '¾': "\\textthreequarters",
}

// EncodeTable is the macro-name → code-point view of DecodeTable, built
// once at init. The accent commands additionally accept the dotless \i
// as the argument for their dotted-i combination, the way the source
// table spells accented i.
var EncodeTable MacroTable

// accentsWithDotlessI lists the commands given a \i argument alias.
var accentsWithDotlessI = []string{"`", "'", "^", "\"", "~", "=", "u", "v"}

func isAsciiLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// splitSpelling splits a LaTeX spelling like "\'e", "\c c" or "\ae" into
// macro name and argument. hasArg is false for argument-less macros.
func splitSpelling(s string) (name, arg string, hasArg bool) {
	rest := s[1:] // past the backslash
	if !isAsciiLetter(rest[0]) {
		// control symbol: one-character name, the rest is the argument
		return rest[:1], rest[1:], true
	}
	i := 0
	for i < len(rest) && isAsciiLetter(rest[i]) {
		i++
	}
	name = rest[:i]
	switch {
	case i == len(rest):
		return name, "", false
	case rest[i] == ' ':
		return name, rest[i+1:], true
	default: // a nested macro argument, backslash included
		return name, rest[i:], true
	}
}

func init() {
	EncodeTable = make(MacroTable, len(DecodeTable))
	for cp, spelling := range DecodeTable {
		name, arg, hasArg := splitSpelling(spelling)
		if !hasArg {
			EncodeTable[name] = Macro{Point: cp}
			continue
		}
		m := EncodeTable[name]
		if m.Args == nil {
			m.Args = make(map[string]rune, 8)
		}
		m.Args[arg] = cp
		EncodeTable[name] = m
	}
	for _, name := range accentsWithDotlessI {
		m := EncodeTable[name]
		if cp, ok := m.Args["i"]; ok {
			m.Args[`\i`] = cp
		}
	}
}
