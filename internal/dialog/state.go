// Package dialog implements the deterministic multi-step conversation
// engine. Every transition is a pure function (state, input) ->
// (new state, message); the caller retains the returned state and passes
// it into the next turn, so the machine is replayable turn by turn.
package dialog

import (
	"github.com/carebridge-sg/carebot-go/internal/domain"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
)

// Step is the dialog state machine step.
type Step string

const (
	StepChooseDomain  Step = "choose_domain"
	StepChooseFocus   Step = "choose_focus"
	StepRefineAndShow Step = "refine_and_show"
)

// Focus selects which facet of a scheme the result cards emphasize.
type Focus string

const (
	FocusOverview    Focus = "overview"
	FocusEligibility Focus = "eligibility"
	FocusSteps       Focus = "steps"
)

// ParseFocus returns the Focus for id, or false when unknown.
func ParseFocus(id string) (Focus, bool) {
	switch Focus(id) {
	case FocusOverview, FocusEligibility, FocusSteps:
		return Focus(id), true
	}
	return "", false
}

// State is the per-conversation dialog state. It is an immutable value:
// transitions return new values and never mutate in place.
type State struct {
	Lang      i18n.Lang     `json:"lang"`
	Step      Step          `json:"step"`
	Domain    domain.Domain `json:"domain_id,omitempty"`
	Focus     Focus         `json:"focus"`
	LastQuery string        `json:"last_query,omitempty"`
	Offset    int           `json:"offset"`
	PageSize  int           `json:"page_size"`

	// Ended is orthogonal to Step: once true, the next free-text turn
	// reinitializes the session instead of being treated as a query.
	Ended bool `json:"ended"`
}

// ActionType enumerates the closed set of discrete UI actions.
type ActionType string

const (
	ActionRestart     ActionType = "RESTART"
	ActionBackTopics  ActionType = "BACK_TOPICS"
	ActionUrgent      ActionType = "URGENT"
	ActionSensitive   ActionType = "SENSITIVE"
	ActionSetDomain   ActionType = "SET_DOMAIN"
	ActionSetFocus    ActionType = "SET_FOCUS"
	ActionAddQuery    ActionType = "ADD_QUERY"
	ActionMoreResults ActionType = "MORE_RESULTS"
	ActionEnd         ActionType = "END"
	ActionEscalate    ActionType = "ESCALATE"
	ActionNoop        ActionType = "NOOP"
)

// Action is one discrete UI action with its payload. Only the field
// matching the type is meaningful.
type Action struct {
	Type   ActionType    `json:"type"`
	Domain domain.Domain `json:"domain_id,omitempty"` // SET_DOMAIN
	Focus  Focus         `json:"focus,omitempty"`     // SET_FOCUS
	Text   string        `json:"text,omitempty"`      // ADD_QUERY
}
