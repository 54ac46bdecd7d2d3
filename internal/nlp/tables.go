package nlp

// Portuguese language tables for the preprocessing pipeline. They are
// package-level defaults; Pipeline instances hold their own copies so a
// different locale can be injected without touching control flow.

// defaultStopWords are common Portuguese function words that carry no
// sentiment signal. Matching happens after normalization, so accented
// entries are stored in their stripped form ("não" -> "nao").
var defaultStopWords = []string{
	"a", "o", "e", "de", "do", "da", "em", "um", "uma", "para", "com", "nao", "que",
	"se", "na", "por", "mais", "as", "os", "me", "meu", "minha", "te", "seu", "sua",
	"nos", "nossos", "voces", "eles", "elas", "isso", "isto", "aquilo", "onde", "quando",
	"como", "porque", "mas", "ou", "entao", "tambem", "ja", "ainda", "so", "ate", "sobre",
}

// defaultSuffixes are common Portuguese suffixes for single-pass stemming,
// stored post-normalization ("ção" -> "cao"). Order does not matter here;
// the stemmer always tries longest first.
var defaultSuffixes = []string{
	"cao", "coes",
	"mente",
	"ado", "ada", "ados", "adas",
	"ido", "ida", "idos", "idas",
	"ando", "endo", "indo",
	"s", "es",
}

// accentReplacer maps accented Portuguese characters to their unaccented
// equivalents.
var accentTable = map[rune]rune{
	'á': 'a', 'à': 'a', 'ã': 'a', 'â': 'a',
	'é': 'e', 'ê': 'e',
	'í': 'i',
	'ó': 'o', 'ô': 'o', 'õ': 'o',
	'ú': 'u', 'ü': 'u',
	'ç': 'c',
}
