package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "OLA Mundo", "ola mundo"},
		{"strips accents", "situação difícil", "situacao dificil"},
		{"punctuation becomes space", "bom, muito bom!", "bom muito bom"},
		{"collapses whitespace", "  um   dois\t\ntres ", "um dois tres"},
		{"keeps digits", "sprint 12 concluida", "sprint 12 concluida"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Normalize(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	p := New()

	t.Run("drops single-rune tokens", func(t *testing.T) {
		assert.Equal(t, []string{"dia", "de", "trabalho"}, p.Tokenize("o dia de trabalho é..."))
	})

	t.Run("tokens are normalized", func(t *testing.T) {
		for _, tok := range p.Tokenize("Situação COMPLICADA, né?") {
			assert.Equal(t, tok, p.Normalize(tok))
			assert.GreaterOrEqual(t, len([]rune(tok)), 2)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, p.Tokenize(""))
	})
}

func TestRemoveStopWords(t *testing.T) {
	p := New()

	tokens := p.Tokenize("não estou bem com o trabalho")
	kept := p.RemoveStopWords(tokens)
	assert.Equal(t, []string{"estou", "bem", "trabalho"}, kept)
}

func TestStem(t *testing.T) {
	p := New()

	tests := []struct {
		in   string
		want string
	}{
		{"situação", "situa"},     // ção -> cao stripped
		{"cansado", "cans"},       // ado
		{"estressada", "estress"}, // ada
		{"rapidamente", "rapida"}, // mente
		{"correndo", "corr"},      // endo
		{"trabalhos", "trabalho"}, // s
		{"feliz", "feliz"},        // no suffix
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Stem(tt.in))
		})
	}

	t.Run("strips longest suffix first", func(t *testing.T) {
		// "ados" wins over "s" and "ado"
		assert.Equal(t, "cans", p.Stem("cansados"))
	})

	t.Run("single pass is not idempotent", func(t *testing.T) {
		// "coraçoes" -> strip "coes" -> "cora"; a second call would
		// strip nothing, but "cansadas" -> "cans" -> "can" shows the
		// second pass can strip again.
		first := p.Stem("cansadas")
		assert.Equal(t, "cans", first)
		assert.Equal(t, "can", p.Stem(first))
	})
}

func TestProcess(t *testing.T) {
	p := New()

	t.Run("full pipeline", func(t *testing.T) {
		got := p.Process("Não estou conseguindo terminar as tarefas")
		assert.Equal(t, "estou consegu terminar tarefa", got)
	})

	t.Run("stop words removed before stemming", func(t *testing.T) {
		stems := p.ProcessTokens("o que eu sinto é cansaço")
		assert.NotContains(t, stems, "o")
		assert.NotContains(t, stems, "que")
	})
}

func TestExtract(t *testing.T) {
	p := New()

	t.Run("counts", func(t *testing.T) {
		f := p.Extract("não gosto do trabalho, trabalho demais")
		assert.Equal(t, 38, f.Length)
		assert.Equal(t, 6, f.TokenCount)
		assert.Equal(t, 4, f.SignificantTokens) // nao and do are stop words
		assert.Equal(t, 3, f.DistinctTokens)    // gosto, trabalho, demais
		assert.Equal(t, 2, f.Frequency["trabalho"])
	})

	t.Run("empty text", func(t *testing.T) {
		f := p.Extract("")
		assert.Zero(t, f.TokenCount)
		assert.Zero(t, f.AvgTokenLength)
		assert.Empty(t, f.Frequency)
	})
}

func TestCustomTables(t *testing.T) {
	p := NewWithTables(Tables{
		StopWords: []string{"the"},
		Suffixes:  []string{"ing"},
	})

	assert.Equal(t, "runn", p.Stem("running"))
	assert.Equal(t, []string{"runn", "fast"}, p.ProcessTokens("the running fast"))
}
