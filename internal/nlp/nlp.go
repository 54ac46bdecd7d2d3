// Package nlp implements the text preprocessing pipeline used by the
// analysis engine: normalization, tokenization, stop-word removal and
// single-pass suffix stemming for Portuguese text.
package nlp

import (
	"sort"
	"strings"
	"unicode"
)

// Pipeline holds the language tables used for preprocessing. All tables
// are read-only after construction, so a Pipeline is safe for concurrent
// use.
type Pipeline struct {
	stopWords map[string]struct{}
	suffixes  []string // sorted by descending length
	accents   map[rune]rune
}

// Tables carries the language-specific data a Pipeline is built from.
type Tables struct {
	StopWords []string
	Suffixes  []string
	Accents   map[rune]rune
}

// DefaultTables returns the built-in Portuguese tables.
func DefaultTables() Tables {
	return Tables{
		StopWords: defaultStopWords,
		Suffixes:  defaultSuffixes,
		Accents:   accentTable,
	}
}

// New creates a Pipeline with the default Portuguese tables.
func New() *Pipeline {
	return NewWithTables(DefaultTables())
}

// NewWithTables creates a Pipeline from the given tables.
func NewWithTables(t Tables) *Pipeline {
	stop := make(map[string]struct{}, len(t.StopWords))
	for _, w := range t.StopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	suffixes := make([]string, len(t.Suffixes))
	copy(suffixes, t.Suffixes)
	sort.SliceStable(suffixes, func(i, j int) bool {
		return len(suffixes[i]) > len(suffixes[j])
	})

	return &Pipeline{
		stopWords: stop,
		suffixes:  suffixes,
		accents:   t.Accents,
	}
}

// Normalize lowercases the text, strips diacritics, replaces every
// non-alphanumeric character with a space and collapses whitespace runs.
func (p *Pipeline) Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if rep, ok := p.accents[r]; ok {
			r = rep
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes the text and splits it into word tokens,
// discarding tokens of a single character.
func (p *Pipeline) Tokenize(text string) []string {
	fields := strings.Fields(p.Normalize(text))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// RemoveStopWords filters out stop words, preserving token order.
func (p *Pipeline) RemoveStopWords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := p.stopWords[strings.ToLower(tok)]; !ok {
			kept = append(kept, tok)
		}
	}
	return kept
}

// Stem strips the longest matching suffix from the token. Only one
// suffix is ever stripped; stemming is intentionally not idempotent
// (stem(stem(w)) may strip again).
func (p *Pipeline) Stem(token string) string {
	tok := p.Normalize(token)

	for _, suffix := range p.suffixes {
		if strings.HasSuffix(tok, suffix) {
			return tok[:len(tok)-len(suffix)]
		}
	}
	return tok
}

// Process runs the full pipeline: tokenization, stop-word removal and
// stemming, returning the stemmed tokens joined by single spaces.
func (p *Pipeline) Process(text string) string {
	return strings.Join(p.ProcessTokens(text), " ")
}

// ProcessTokens is Process returning the stemmed token list instead of a
// joined string.
func (p *Pipeline) ProcessTokens(text string) []string {
	tokens := p.RemoveStopWords(p.Tokenize(text))

	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = p.Stem(tok)
	}
	return stems
}

// Features holds the scalar features and word frequencies extracted from
// a text.
type Features struct {
	Length            int            // character length of the raw text
	TokenCount        int            // tokens before stop-word removal
	SignificantTokens int            // tokens after stop-word removal
	DistinctTokens    int            // distinct significant tokens
	AvgTokenLength    float64        // average length over all tokens
	Frequency         map[string]int // significant token -> occurrences
}

// Extract computes Features for the given text.
func (p *Pipeline) Extract(text string) Features {
	tokens := p.Tokenize(text)
	significant := p.RemoveStopWords(tokens)

	freq := make(map[string]int, len(significant))
	for _, tok := range significant {
		freq[strings.ToLower(tok)]++
	}

	var avg float64
	if len(tokens) > 0 {
		total := 0
		for _, tok := range tokens {
			total += len([]rune(tok))
		}
		avg = float64(total) / float64(len(tokens))
	}

	return Features{
		Length:            len([]rune(text)),
		TokenCount:        len(tokens),
		SignificantTokens: len(significant),
		DistinctTokens:    len(freq),
		AvgTokenLength:    avg,
		Frequency:         freq,
	}
}
