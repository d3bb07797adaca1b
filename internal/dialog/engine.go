package dialog

import (
	"strings"

	"github.com/carebridge-sg/carebot-go/internal/domain"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
	"github.com/carebridge-sg/carebot-go/internal/kb"
	"github.com/carebridge-sg/carebot-go/internal/retrieve"
	"github.com/carebridge-sg/carebot-go/internal/safety"
	"github.com/carebridge-sg/carebot-go/internal/textnorm"
)

// RoleAssistant is the role tag on every outbound message.
const RoleAssistant = "assistant"

// Observer receives classification and retrieval outcomes for
// instrumentation. All methods must be safe for concurrent use.
type Observer interface {
	RecordSafetyTrigger(kind string)
	RecordDomainMatch(domain, method string)
	RecordRetrieval(resultCount int, lowConfidence bool)
}

// Options configure an Engine.
type Options struct {
	Retrieval       retrieve.Options
	PageSize        int
	DefaultLanguage i18n.Lang
	Observer        Observer // optional
}

// DefaultOptions returns the standard engine configuration.
func DefaultOptions() Options {
	return Options{
		Retrieval:       retrieve.DefaultOptions(),
		PageSize:        3,
		DefaultLanguage: i18n.LangEN,
	}
}

// Engine is the dialog state machine. It holds only immutable tables and
// stateless collaborators, so a single Engine serves all sessions
// concurrently; per-conversation state lives in the State values the
// caller threads through each turn.
type Engine struct {
	safety      *safety.Classifier
	domains     *domain.Classifier
	retriever   *retrieve.Retriever
	entryPoints []kb.EntryPoint
	pageSize    int
	defaultLang i18n.Lang
	obs         Observer
}

// New creates an Engine over the immutable catalog.
func New(catalog *kb.Catalog, norm *textnorm.Normalizer, opts Options) *Engine {
	if opts.PageSize <= 0 {
		opts.PageSize = 3
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = i18n.LangEN
	}
	return &Engine{
		safety:      safety.New(),
		domains:     domain.NewClassifier(norm),
		retriever:   retrieve.New(catalog, norm, opts.Retrieval),
		entryPoints: catalog.EntryPoints,
		pageSize:    opts.PageSize,
		defaultLang: opts.DefaultLanguage,
		obs:         opts.Observer,
	}
}

// InitState returns a fresh conversation state.
func (e *Engine) InitState(lang i18n.Lang) State {
	if lang == "" {
		lang = e.defaultLang
	}
	return State{
		Lang:     lang,
		Step:     StepChooseDomain,
		Focus:    FocusOverview,
		PageSize: e.pageSize,
	}
}

// Welcome returns the opening message for a fresh conversation.
func (e *Engine) Welcome(lang i18n.Lang) Message {
	if lang == "" {
		lang = e.defaultLang
	}
	return Message{
		Role:         RoleAssistant,
		Text:         welcomeText(lang),
		QuickReplies: topicMenu(lang),
	}
}

// HandleText processes one free-text turn. Precedence: sensitive > urgent >
// ended revival > step-specific handling.
func (e *Engine) HandleText(state State, text string) Turn {
	lang := state.Lang

	if res := e.safety.Classify(text); res.Sensitive || res.Urgent {
		fresh := e.InitState(lang)
		if res.Sensitive {
			e.observeSafety(ReasonSensitive)
			return Turn{
				State:          fresh,
				Message:        e.crisisMessage(lang),
				Recommendation: &Recommendation{Reason: ReasonSensitive},
			}
		}
		e.observeSafety(ReasonUrgent)
		return Turn{
			State:          fresh,
			Message:        e.urgencyMessage(lang),
			Recommendation: &Recommendation{Reason: ReasonUrgent},
		}
	}

	if state.Ended {
		fresh := e.InitState(lang)
		return Turn{State: fresh, Message: e.Welcome(lang)}
	}

	if strings.TrimSpace(text) == "" {
		return Turn{State: state, Message: e.guidingPrompt(state)}
	}

	switch state.Step {
	case StepChooseFocus:
		next := state
		next.Step = StepRefineAndShow
		next.LastQuery = strings.TrimSpace(text)
		next.Offset = 0
		return e.renderResults(next)

	case StepRefineAndShow:
		// New free text replaces the query; pagination only advances
		// through the explicit MORE_RESULTS action.
		next := state
		next.LastQuery = strings.TrimSpace(text)
		next.Offset = 0
		return e.renderResults(next)

	default: // StepChooseDomain
		d, method := e.domains.Classify(text)
		if e.obs != nil {
			name := string(d)
			if d == "" {
				name = "none"
			}
			e.obs.RecordDomainMatch(name, string(method))
		}
		if d == "" {
			return Turn{State: state, Message: Message{
				Role:         RoleAssistant,
				Text:         clarifyTopicText(lang),
				QuickReplies: topicMenu(lang),
			}}
		}
		next := state
		next.Step = StepChooseFocus
		next.Domain = d
		return Turn{State: next, Message: Message{
			Role:         RoleAssistant,
			Text:         domainIntroText(lang, d),
			QuickReplies: focusMenu(lang),
		}}
	}
}

// HandleAction processes one discrete UI action. Unrecognized actions are
// inert rather than faults.
func (e *Engine) HandleAction(state State, action Action) Turn {
	lang := state.Lang

	switch action.Type {
	case ActionRestart:
		fresh := e.InitState(lang)
		return Turn{State: fresh, Message: e.Welcome(lang)}

	case ActionBackTopics:
		next := state
		next.Step = StepChooseDomain
		next.Domain = ""
		next.LastQuery = ""
		next.Offset = 0
		return Turn{State: next, Message: Message{
			Role:         RoleAssistant,
			Text:         topicsText(lang),
			QuickReplies: topicMenu(lang),
		}}

	case ActionSensitive:
		e.observeSafety(ReasonSensitive)
		return Turn{
			State:          e.InitState(lang),
			Message:        e.crisisMessage(lang),
			Recommendation: &Recommendation{Reason: ReasonSensitive},
		}

	case ActionUrgent:
		e.observeSafety(ReasonUrgent)
		return Turn{
			State:          e.InitState(lang),
			Message:        e.urgencyMessage(lang),
			Recommendation: &Recommendation{Reason: ReasonUrgent},
		}

	case ActionSetDomain:
		d, ok := domain.Parse(string(action.Domain))
		if !ok {
			return Turn{State: state, Message: e.guidingPrompt(state)}
		}
		next := state
		next.Step = StepChooseFocus
		next.Domain = d
		next.LastQuery = ""
		next.Offset = 0
		return Turn{State: next, Message: Message{
			Role:         RoleAssistant,
			Text:         domainIntroText(lang, d),
			QuickReplies: focusMenu(lang),
		}}

	case ActionSetFocus:
		f, ok := ParseFocus(string(action.Focus))
		if !ok || state.Domain == "" {
			return Turn{State: state, Message: e.guidingPrompt(state)}
		}
		next := state
		next.Focus = f
		if next.LastQuery != "" {
			// A focus change always shows page one.
			next.Offset = 0
			next.Step = StepRefineAndShow
			return e.renderResults(next)
		}
		return Turn{State: next, Message: Message{
			Role:         RoleAssistant,
			Text:         focusClarifyText(lang, next.Domain),
			QuickReplies: queryMenu(lang, next.Domain),
		}}

	case ActionAddQuery:
		text := strings.TrimSpace(action.Text)
		if text == "" {
			return Turn{State: state, Message: e.guidingPrompt(state)}
		}
		next := state
		if next.LastQuery == "" {
			next.LastQuery = text
		} else {
			next.LastQuery += " " + text
		}
		next.Offset = 0
		next.Step = StepRefineAndShow
		return e.renderResults(next)

	case ActionMoreResults:
		if state.LastQuery == "" {
			return Turn{State: state, Message: e.guidingPrompt(state)}
		}
		ranked := e.retriever.RetrieveAll(state.LastQuery, state.Domain)
		e.observeRetrieval(ranked)
		nextOffset := state.Offset + state.PageSize
		if nextOffset >= ranked.Total() {
			return Turn{State: state, Message: Message{
				Role:         RoleAssistant,
				Text:         noMoreResultsText(lang),
				QuickReplies: []QuickReply{escalateReply(lang), backReply(lang), restartReply(lang), endReply(lang)},
			}}
		}
		next := state
		next.Offset = nextOffset
		return e.renderResults(next)

	case ActionEnd:
		next := state
		next.Ended = true
		return Turn{State: next, Message: Message{
			Role:         RoleAssistant,
			Text:         closingText(lang),
			QuickReplies: []QuickReply{restartReply(lang)},
		}}

	case ActionEscalate:
		return Turn{
			State: state,
			Message: Message{
				Role:         RoleAssistant,
				Text:         escalateAckText(lang),
				Cards:        entryPointCards(e.entryPoints, lang),
				QuickReplies: []QuickReply{restartReply(lang), endReply(lang)},
			},
			Recommendation: &Recommendation{Reason: ReasonUserRequested},
		}

	default: // ActionNoop and anything unrecognized
		return Turn{State: state, Message: e.guidingPrompt(state)}
	}
}

// renderResults retrieves for the state's query and domain, slices the
// current page and shapes the message. Zero matches degrade to the
// entry-point fallback; low confidence softens the tone and surfaces entry
// points alongside the results.
func (e *Engine) renderResults(state State) Turn {
	lang := state.Lang
	ranked := e.retriever.RetrieveAll(state.LastQuery, state.Domain)
	e.observeRetrieval(ranked)

	if ranked.Total() == 0 {
		return Turn{
			State: state,
			Message: Message{
				Role:         RoleAssistant,
				Text:         noResultsText(lang),
				Cards:        entryPointCards(e.entryPoints, lang),
				QuickReplies: []QuickReply{escalateReply(lang), backReply(lang), restartReply(lang), endReply(lang)},
			},
			Recommendation: &Recommendation{Reason: ReasonLowConfidence},
		}
	}

	page := ranked.Page(state.Offset, state.PageSize)
	hasMore := state.Offset+state.PageSize < ranked.Total()

	text := resultsText(lang, len(page), ranked.Total())
	cards := schemeCards(page, lang, state.Focus)
	var rec *Recommendation
	if ranked.LowConfidence {
		text = lowConfidenceText(lang, len(page), ranked.Total())
		cards = append(cards, entryPointCards(e.entryPoints, lang)...)
		rec = &Recommendation{Reason: ReasonLowConfidence}
	}

	return Turn{
		State: state,
		Message: Message{
			Role:         RoleAssistant,
			Text:         text,
			Cards:        cards,
			QuickReplies: resultsMenu(lang, hasMore, ranked.LowConfidence),
		},
		Recommendation: rec,
	}
}

func (e *Engine) observeSafety(kind string) {
	if e.obs != nil {
		e.obs.RecordSafetyTrigger(kind)
	}
}

func (e *Engine) observeRetrieval(ranked retrieve.Ranked) {
	if e.obs != nil {
		e.obs.RecordRetrieval(ranked.Total(), ranked.LowConfidence)
	}
}

func (e *Engine) crisisMessage(lang i18n.Lang) Message {
	return Message{
		Role:         RoleAssistant,
		Text:         crisisText(lang),
		Cards:        entryPointCards(e.entryPoints, lang),
		QuickReplies: crisisMenu(lang),
	}
}

func (e *Engine) urgencyMessage(lang i18n.Lang) Message {
	return Message{
		Role:         RoleAssistant,
		Text:         urgencyText(lang),
		Cards:        entryPointCards(e.entryPoints, lang),
		QuickReplies: crisisMenu(lang),
	}
}

// guidingPrompt keeps the user with an actionable next step whatever the
// current state.
func (e *Engine) guidingPrompt(state State) Message {
	lang := state.Lang
	msg := Message{Role: RoleAssistant, Text: emptyInputText(lang)}
	switch state.Step {
	case StepChooseFocus:
		msg.QuickReplies = focusMenu(lang)
	case StepRefineAndShow:
		replies := focusReplies(lang)
		replies = append(replies, backReply(lang), restartReply(lang), endReply(lang))
		msg.QuickReplies = replies
	default:
		msg.QuickReplies = topicMenu(lang)
	}
	return msg
}
