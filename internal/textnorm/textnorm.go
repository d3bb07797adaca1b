// Package textnorm canonicalizes raw bilingual user text into a token
// sequence. Normalization folds near-synonym phrasing onto canonical
// phrases through an ordered rewrite table; tokenization handles mixed
// English/Chinese input by splitting Chinese runs per character, with an
// optional dictionary segmenter for better Chinese word boundaries.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/go-ego/gse"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer is a pure function of its input and static tables.
// It is safe for concurrent use.
type Normalizer struct {
	seg *gse.Segmenter
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSegmenter attaches a dictionary segmenter used to split Chinese runs
// into words instead of single characters.
func WithSegmenter(seg *gse.Segmenter) Option {
	return func(n *Normalizer) {
		n.seg = seg
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewSegmenter loads the default gse dictionary segmenter.
func NewSegmenter() (*gse.Segmenter, error) {
	var seg gse.Segmenter
	if err := seg.LoadDict(); err != nil {
		return nil, err
	}
	return &seg, nil
}

// Fold lower-cases s and strips diacritic marks, so that matching is
// case/diacritic-insensitive.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Normalize trims and case/diacritic-folds raw text, then applies the
// ordered synonym rewrite table. Each rule sees the output of the previous
// one, so chained near-synonyms converge to a single canonical phrase.
func (n *Normalizer) Normalize(raw string) string {
	text := Fold(strings.TrimSpace(raw))
	for _, rule := range synonymRules {
		if strings.Contains(text, rule.Pattern) {
			text = strings.ReplaceAll(text, rule.Pattern, rule.Canonical)
		}
	}
	return text
}

// Tokenize normalizes raw text, strips punctuation while preserving Unicode
// letters and digits, splits Chinese runs per character (or via the attached
// segmenter), splits on whitespace, and removes bilingual stopwords.
func (n *Normalizer) Tokenize(raw string) []string {
	text := n.Normalize(raw)

	var b strings.Builder
	b.Grow(len(text) * 2)
	var cjkRun []rune
	flushCJK := func() {
		if len(cjkRun) == 0 {
			return
		}
		for _, word := range n.splitCJK(string(cjkRun)) {
			b.WriteByte(' ')
			b.WriteString(word)
		}
		b.WriteByte(' ')
		cjkRun = cjkRun[:0]
	}

	for _, r := range text {
		switch {
		case isCJK(r):
			cjkRun = append(cjkRun, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushCJK()
			b.WriteRune(r)
		default:
			flushCJK()
			b.WriteByte(' ')
		}
	}
	flushCJK()

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// splitCJK splits a run of Chinese characters into tokens, one per
// character by default or by dictionary words when a segmenter is attached.
func (n *Normalizer) splitCJK(run string) []string {
	if n.seg != nil {
		words := n.seg.Cut(run, true)
		out := words[:0]
		for _, w := range words {
			w = strings.TrimSpace(w)
			if w != "" {
				out = append(out, w)
			}
		}
		return out
	}
	chars := make([]string, 0, len(run)/3)
	for _, r := range run {
		chars = append(chars, string(r))
	}
	return chars
}

// isCJK reports whether r is a CJK ideograph.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // Extension A
		(r >= 0xF900 && r <= 0xFAFF) // Compatibility Ideographs
}
