package domain

import (
	"strings"

	"github.com/carebridge-sg/carebot-go/internal/textnorm"
)

// Method records how a classification was reached.
type Method string

const (
	MethodHard Method = "hard"
	MethodSoft Method = "soft"
	MethodNone Method = "none"
)

// softMinScore is the minimum soft score required before the classifier
// commits to a domain instead of reporting unresolved.
const softMinScore = 3

// Classifier maps normalized user text to a Domain via ordered hard probes
// with a scored soft fallback. It is stateless and safe for concurrent use.
type Classifier struct {
	norm *textnorm.Normalizer
}

// NewClassifier creates a Classifier using the given normalizer.
func NewClassifier(norm *textnorm.Normalizer) *Classifier {
	return &Classifier{norm: norm}
}

// Classify returns the matched domain and the method used. An unresolved
// input returns ("", MethodNone); that is a normal outcome, not an error.
func (c *Classifier) Classify(raw string) (Domain, Method) {
	text := c.norm.Normalize(raw)
	if strings.TrimSpace(text) == "" {
		return "", MethodNone
	}

	if d, ok := c.hardMatch(text); ok {
		return d, MethodHard
	}
	if d, ok := c.softMatch(text, textnorm.Fold(raw), c.norm.Tokenize(raw)); ok {
		return d, MethodSoft
	}
	return "", MethodNone
}

// hardMatch evaluates probes domain by domain in the order of All.
// The first matching probe wins.
func (c *Classifier) hardMatch(text string) (Domain, bool) {
	for _, d := range All {
		for _, probe := range hardProbes[d] {
			if strings.Contains(text, probe) {
				return d, true
			}
		}
	}
	return "", false
}

// softMatch scores every domain and picks the highest, requiring at least
// softMinScore. Ties are broken by the order of All because only a strictly
// greater score replaces the current best.
func (c *Classifier) softMatch(text, rawFolded string, tokens []string) (Domain, bool) {
	best := Domain("")
	bestScore := 0
	for _, d := range All {
		score := softScore(d, text, rawFolded, tokens)
		if score > bestScore {
			best = d
			bestScore = score
		}
	}
	if bestScore < softMinScore {
		return "", false
	}
	return best, true
}

func softScore(d Domain, text, rawFolded string, tokens []string) int {
	score := 0
	for _, hint := range hints[d] {
		if strings.Contains(text, hint) {
			score += 3
		}
	}
	for _, token := range tokens {
		for _, hint := range hints[d] {
			if strings.Contains(hint, token) || strings.Contains(token, hint) {
				score++
				break
			}
		}
	}
	// The id literal must come from what the user actually typed. Checking
	// the rewritten text instead would let a synonym rule inject the id and
	// grant the point for free.
	if strings.Contains(rawFolded, string(d)) {
		score++
	}
	return score
}
