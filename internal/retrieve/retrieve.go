// Package retrieve scores and ranks knowledge-base schemes against a
// tokenized query and an optional domain hint. The scoring is a bounded,
// explainable lexical heuristic: additive weights over substring matches,
// not a search index.
package retrieve

import (
	"sort"
	"strings"

	"github.com/carebridge-sg/carebot-go/internal/domain"
	"github.com/carebridge-sg/carebot-go/internal/kb"
	"github.com/carebridge-sg/carebot-go/internal/textnorm"
)

// Weights are the tunable scoring constants. The values are empirically
// chosen; treat them as configuration, not invariants.
type Weights struct {
	Token       int // per query token found anywhere in the scheme text
	Title       int // per query token found in the name fields
	DomainBoost int // when the hint equals the scheme category
	ShortBonus  int // extra for queries of at most two tokens with the boost applied
}

// DefaultWeights returns the standard scoring profile.
func DefaultWeights() Weights {
	return Weights{Token: 3, Title: 2, DomainBoost: 10, ShortBonus: 2}
}

// Options configure a Retriever.
type Options struct {
	Weights Weights

	// MaxResults caps the ranked list to bound response size.
	MaxResults int

	// LowConfidenceThreshold marks a retrieval low-confidence when the top
	// score falls below it. A signal, not a rejection.
	LowConfidenceThreshold int
}

// DefaultOptions returns the standard retrieval configuration.
func DefaultOptions() Options {
	return Options{
		Weights:                DefaultWeights(),
		MaxResults:             50,
		LowConfidenceThreshold: 5,
	}
}

// Result is one scored scheme.
type Result struct {
	Scheme kb.Scheme
	Score  int
}

// Ranked is the complete ranked, filtered result list for one
// (query, domain) pair. Pagination is a caller concern.
type Ranked struct {
	Results       []Result
	LowConfidence bool
	TopScore      int
}

// Total returns the number of ranked results.
func (r Ranked) Total() int {
	return len(r.Results)
}

// Page slices a fixed-size page from the ranked list without re-ranking.
func (r Ranked) Page(offset, pageSize int) []Result {
	if offset < 0 || offset >= len(r.Results) || pageSize <= 0 {
		return nil
	}
	end := offset + pageSize
	if end > len(r.Results) {
		end = len(r.Results)
	}
	return r.Results[offset:end]
}

// indexed holds a scheme's precomputed folded matching text.
type indexed struct {
	scheme    kb.Scheme
	matchText string
	nameText  string
}

// Retriever ranks the immutable catalog. Safe for concurrent use.
type Retriever struct {
	norm    *textnorm.Normalizer
	opts    Options
	indexes []indexed
}

// New builds a Retriever over the catalog, precomputing the folded matching
// text per scheme. Catalog order is preserved as the stable tie-break.
func New(catalog *kb.Catalog, norm *textnorm.Normalizer, opts Options) *Retriever {
	indexes := make([]indexed, 0, len(catalog.Schemes))
	for _, s := range catalog.Schemes {
		indexes = append(indexes, indexed{
			scheme:    s,
			matchText: buildMatchText(s),
			nameText:  textnorm.Fold(s.Name.EN + " " + s.Name.ZH),
		})
	}
	return &Retriever{norm: norm, opts: opts, indexes: indexes}
}

// buildMatchText concatenates the scheme's bilingual name, summary,
// keywords, eligibility and steps into one folded string.
func buildMatchText(s kb.Scheme) string {
	var b strings.Builder
	join := func(parts ...string) {
		for _, p := range parts {
			if p == "" {
				continue
			}
			b.WriteString(p)
			b.WriteByte(' ')
		}
	}
	join(s.Name.EN, s.Name.ZH, s.Summary.EN, s.Summary.ZH)
	join(s.Keywords...)
	for _, e := range s.Eligibility {
		join(e.EN, e.ZH)
	}
	for _, st := range s.Steps {
		join(st.EN, st.ZH)
	}
	return textnorm.Fold(b.String())
}

// score computes the additive score for one scheme. Matching is
// case/diacritic-insensitive substring containment with no stemming.
func (r *Retriever) score(tokens []string, idx indexed, hint domain.Domain) int {
	w := r.opts.Weights
	score := 0
	for _, token := range tokens {
		if strings.Contains(idx.matchText, token) {
			score += w.Token
		}
		if strings.Contains(idx.nameText, token) {
			score += w.Title
		}
	}
	if hint != "" && hint.Category() == idx.scheme.Category {
		score += w.DomainBoost
		if len(tokens) <= 2 {
			score += w.ShortBonus
		}
	}
	return score
}

// ScoreScheme scores an arbitrary scheme, indexing it on the fly. Prefer
// RetrieveAll for catalog queries; this exists for callers holding a single
// scheme.
func (r *Retriever) ScoreScheme(tokens []string, s kb.Scheme, hint domain.Domain) int {
	return r.score(tokens, indexed{
		scheme:    s,
		matchText: buildMatchText(s),
		nameText:  textnorm.Fold(s.Name.EN + " " + s.Name.ZH),
	}, hint)
}

// RetrieveAll scores every scheme, sorts descending by score with a stable
// tie-break preserving catalog order, discards non-positive scores and caps
// the list at MaxResults.
func (r *Retriever) RetrieveAll(query string, hint domain.Domain) Ranked {
	tokens := r.norm.Tokenize(query)

	results := make([]Result, 0, len(r.indexes))
	for _, idx := range r.indexes {
		if score := r.score(tokens, idx, hint); score > 0 {
			results = append(results, Result{Scheme: idx.scheme, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > r.opts.MaxResults {
		results = results[:r.opts.MaxResults]
	}

	topScore := 0
	if len(results) > 0 {
		topScore = results[0].Score
	}

	return Ranked{
		Results:       results,
		LowConfidence: topScore < r.opts.LowConfidenceThreshold,
		TopScore:      topScore,
	}
}
