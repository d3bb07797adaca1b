package dialog

import "github.com/carebridge-sg/carebot-go/internal/kb"

// CardLink is one official reference link on a card.
type CardLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Card is one result card. Focus tells the presentation layer which
// sections to render; entry-point cards carry a contact block instead of
// eligibility and steps.
type Card struct {
	Title       string      `json:"title"`
	Summary     string      `json:"summary,omitempty"`
	Eligibility []string    `json:"eligibility,omitempty"`
	Steps       []string    `json:"steps,omitempty"`
	Links       []CardLink  `json:"links,omitempty"`
	Focus       Focus       `json:"focus,omitempty"`
	Contact     *kb.Contact `json:"contact,omitempty"`
}

// QuickReply is a UI shortcut equivalent to the user sending Text or
// triggering Action.
type QuickReply struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Text   string `json:"text,omitempty"`
	Action Action `json:"action"`
}

// Message is the outbound structured message for one turn.
type Message struct {
	Role         string       `json:"role"`
	Text         string       `json:"text"`
	Cards        []Card       `json:"cards,omitempty"`
	QuickReplies []QuickReply `json:"quick_replies"`
}

// Escalation reasons.
const (
	ReasonSensitive     = "sensitive"
	ReasonUrgent        = "urgent"
	ReasonLowConfidence = "low_confidence"
	ReasonUserRequested = "user_requested"
)

// Recommendation is the engine's escalation intent toward the external
// ticketing collaborator. The engine never persists anything itself.
type Recommendation struct {
	Reason string `json:"reason"`
}

// Turn is the result of processing one user turn.
type Turn struct {
	State          State           `json:"state"`
	Message        Message         `json:"message"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}
