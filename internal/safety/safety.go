// Package safety flags crisis and urgency signals in raw user text.
// Detection runs on the raw input before any synonym rewriting so that
// trigger phrasing is matched exactly as the user typed it.
package safety

import "strings"

// Result carries both independent safety signals. Sensitive takes
// precedence over urgent everywhere downstream.
type Result struct {
	Sensitive bool // self-harm signals
	Urgent    bool // homelessness, eviction, emergency signals
}

// sensitiveTriggers are self-harm phrases in both languages, in priority
// order. Matching is case-insensitive substring containment.
var sensitiveTriggers = []string{
	"kill myself",
	"end my life",
	"suicide",
	"suicidal",
	"self harm",
	"self-harm",
	"hurt myself",
	"don't want to live",
	"dont want to live",
	"no reason to live",
	"自杀",
	"想死",
	"不想活",
	"自残",
	"轻生",
	"活不下去",
}

// urgentTriggers are homelessness, eviction, and emergency phrases in both
// languages, in priority order.
var urgentTriggers = []string{
	"no place to stay",
	"nowhere to stay",
	"nowhere to sleep",
	"homeless",
	"evicted",
	"eviction",
	"kicked out",
	"sleeping rough",
	"sleeping on the street",
	"emergency",
	"无家可归",
	"被赶出",
	"没地方睡",
	"睡大街",
	"流落街头",
	"紧急",
}

// Classifier evaluates the static trigger tables. It is stateless and safe
// for concurrent use.
type Classifier struct{}

// New creates a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify evaluates both trigger lists against raw text. Absence of any
// match is a normal outcome, not an error.
func (c *Classifier) Classify(raw string) Result {
	text := strings.ToLower(raw)
	return Result{
		Sensitive: matchAny(text, sensitiveTriggers),
		Urgent:    matchAny(text, urgentTriggers),
	}
}

func matchAny(text string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}
