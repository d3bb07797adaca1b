package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge-sg/carebot-go/internal/domain"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
	"github.com/carebridge-sg/carebot-go/internal/kb"
	"github.com/carebridge-sg/carebot-go/internal/textnorm"
)

func newTestEngine(t *testing.T, pageSize int) *Engine {
	t.Helper()
	catalog, err := kb.LoadEmbedded()
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.PageSize = pageSize
	return New(catalog, textnorm.New(), opts)
}

func TestHandleText_UrgentResetsAndShowsEntryPoints(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := State{Lang: i18n.LangEN, Step: StepRefineAndShow, Domain: domain.Housing, LastQuery: "rental", Offset: 3, PageSize: 3}

	turn := e.HandleText(state, "no place to stay tonight")

	assert.Equal(t, StepChooseDomain, turn.State.Step)
	assert.Empty(t, turn.State.Domain)
	assert.NotEmpty(t, turn.Message.Cards, "urgency message carries entry-point cards")
	require.NotNil(t, turn.Recommendation)
	assert.Equal(t, ReasonUrgent, turn.Recommendation.Reason)
	assert.Equal(t, urgencyText(i18n.LangEN), turn.Message.Text)
}

func TestHandleText_SensitiveTakesPrecedenceOverUrgent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)

	// Matches both a sensitive and an urgent trigger.
	turn := e.HandleText(state, "I was evicted and I want to end my life")

	assert.Equal(t, crisisText(i18n.LangEN), turn.Message.Text)
	require.NotNil(t, turn.Recommendation)
	assert.Equal(t, ReasonSensitive, turn.Recommendation.Reason)
	assert.Equal(t, StepChooseDomain, turn.State.Step)
}

func TestHandleText_HardMatchMovesToChooseFocus(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)

	turn := e.HandleText(state, "I can't afford my hospital bill")

	assert.Equal(t, StepChooseFocus, turn.State.Step)
	assert.Equal(t, domain.Healthcare, turn.State.Domain)
	assert.Contains(t, turn.Message.Text, "Healthcare")
	assert.NotEmpty(t, turn.Message.QuickReplies)
	assert.Nil(t, turn.Recommendation)
}

func TestHandleText_UnresolvedStaysWithTopicMenu(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)

	turn := e.HandleText(state, "hello there")

	assert.Equal(t, StepChooseDomain, turn.State.Step)
	assert.Empty(t, turn.State.Domain)
	// Never left without an actionable next step: full topic menu.
	assert.GreaterOrEqual(t, len(turn.Message.QuickReplies), len(domain.All))
}

func TestHandleText_ChooseFocusTextBecomesFirstQuery(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepChooseFocus
	state.Domain = domain.Healthcare

	turn := e.HandleText(state, "chas clinic")

	assert.Equal(t, StepRefineAndShow, turn.State.Step)
	assert.Equal(t, "chas clinic", turn.State.LastQuery)
	assert.Equal(t, 0, turn.State.Offset)
	assert.NotEmpty(t, turn.Message.Cards)
}

func TestHandleText_RefineReplacesQueryAndResetsOffset(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepRefineAndShow
	state.Domain = domain.Healthcare
	state.LastQuery = "chas clinic"
	state.Offset = 3

	turn := e.HandleText(state, "hospital bill")

	assert.Equal(t, "hospital bill", turn.State.LastQuery)
	assert.Equal(t, 0, turn.State.Offset)
	assert.Equal(t, StepRefineAndShow, turn.State.Step)
}

func TestHandleText_EndedRevivesSession(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepRefineAndShow
	state.Domain = domain.Legal
	state.LastQuery = "divorce"
	state.Ended = true

	turn := e.HandleText(state, "chas clinic")

	// Free text after END reinitializes instead of being treated as a query.
	assert.Equal(t, e.InitState(i18n.LangEN), turn.State)
	assert.Equal(t, e.Welcome(i18n.LangEN), turn.Message)
	assert.Nil(t, turn.Recommendation)
}

func TestHandleText_EmptyInputIsGuidingPrompt(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)

	turn := e.HandleText(state, "   ")

	assert.Equal(t, state, turn.State)
	assert.Equal(t, emptyInputText(i18n.LangEN), turn.Message.Text)
	assert.NotEmpty(t, turn.Message.QuickReplies)
}

func TestHandleAction_RestartRoundTrip(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := State{Lang: i18n.LangZH, Step: StepRefineAndShow, Domain: domain.Mental, Focus: FocusSteps, LastQuery: "counselling", Offset: 6, PageSize: 3, Ended: true}

	turn := e.HandleAction(state, Action{Type: ActionRestart})

	assert.Equal(t, e.InitState(i18n.LangZH), turn.State)
	assert.Equal(t, e.Welcome(i18n.LangZH), turn.Message)
}

func TestHandleAction_SetDomainBypassesTextDetection(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)

	turn := e.HandleAction(state, Action{Type: ActionSetDomain, Domain: domain.Seniors})

	assert.Equal(t, StepChooseFocus, turn.State.Step)
	assert.Equal(t, domain.Seniors, turn.State.Domain)
}

func TestHandleAction_SetFocusRerendersPageOne(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1)
	state := e.InitState(i18n.LangEN)
	state.Step = StepRefineAndShow
	state.Domain = domain.Healthcare
	state.LastQuery = "chas clinic"
	state.Offset = 1 // previously paged forward

	turn := e.HandleAction(state, Action{Type: ActionSetFocus, Focus: FocusEligibility})

	assert.Equal(t, 0, turn.State.Offset, "focus change always shows page one")
	assert.Equal(t, FocusEligibility, turn.State.Focus)
	require.NotEmpty(t, turn.Message.Cards)
	card := turn.Message.Cards[0]
	assert.Equal(t, FocusEligibility, card.Focus)
	assert.NotEmpty(t, card.Eligibility)
	assert.Empty(t, card.Summary)
	assert.Empty(t, card.Steps)
}

func TestHandleAction_SetFocusWithoutQueryAsksClarifyingQuestion(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepChooseFocus
	state.Domain = domain.Financial

	turn := e.HandleAction(state, Action{Type: ActionSetFocus, Focus: FocusSteps})

	assert.Equal(t, FocusSteps, turn.State.Focus)
	assert.Empty(t, turn.Message.Cards)
	assert.Equal(t, focusClarifyText(i18n.LangEN, domain.Financial), turn.Message.Text)
	// Domain-specific quick queries are offered.
	var hasQuery bool
	for _, qr := range turn.Message.QuickReplies {
		if qr.Action.Type == ActionAddQuery {
			hasQuery = true
		}
	}
	assert.True(t, hasQuery)
}

func TestHandleAction_AddQueryAppends(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepRefineAndShow
	state.Domain = domain.Healthcare
	state.LastQuery = "chas"
	state.Offset = 3

	turn := e.HandleAction(state, Action{Type: ActionAddQuery, Text: "clinic"})

	assert.Equal(t, "chas clinic", turn.State.LastQuery)
	assert.Equal(t, 0, turn.State.Offset)
}

func TestHandleAction_PaginationNeverDuplicates(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1)
	state := e.InitState(i18n.LangEN)
	state.Step = StepChooseFocus
	state.Domain = domain.Healthcare

	turn := e.HandleText(state, "chas clinic")
	require.NotEmpty(t, turn.Message.Cards)

	seen := map[string]bool{}
	for {
		for _, card := range turn.Message.Cards {
			if card.Contact != nil {
				continue // entry-point fallback cards are not results
			}
			assert.False(t, seen[card.Title], "duplicate card %q", card.Title)
			seen[card.Title] = true
		}
		var hasMore bool
		for _, qr := range turn.Message.QuickReplies {
			if qr.Action.Type == ActionMoreResults {
				hasMore = true
			}
		}
		if !hasMore {
			break
		}
		turn = e.HandleAction(turn.State, Action{Type: ActionMoreResults})
	}

	// Exhausted: a further MORE_RESULTS yields the distinct no-more message.
	final := e.HandleAction(turn.State, Action{Type: ActionMoreResults})
	assert.Equal(t, noMoreResultsText(i18n.LangEN), final.Message.Text)
	assert.Empty(t, final.Message.Cards)
	assert.GreaterOrEqual(t, len(seen), 2)
}

func TestHandleAction_MoreResultsPastEndOffersEscalation(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepRefineAndShow
	state.Domain = domain.Healthcare
	state.LastQuery = "chas clinic"

	turn := e.HandleAction(state, Action{Type: ActionMoreResults})

	assert.Equal(t, noMoreResultsText(i18n.LangEN), turn.Message.Text)
	var hasEscalate bool
	for _, qr := range turn.Message.QuickReplies {
		if qr.Action.Type == ActionEscalate {
			hasEscalate = true
		}
	}
	assert.True(t, hasEscalate)
}

func TestHandleAction_EndAndEscalate(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)

	ended := e.HandleAction(state, Action{Type: ActionEnd})
	assert.True(t, ended.State.Ended)
	assert.Equal(t, closingText(i18n.LangEN), ended.Message.Text)

	esc := e.HandleAction(state, Action{Type: ActionEscalate})
	require.NotNil(t, esc.Recommendation)
	assert.Equal(t, ReasonUserRequested, esc.Recommendation.Reason)
	assert.Equal(t, state, esc.State, "escalation does not change dialog state")
	assert.NotEmpty(t, esc.Message.Cards)
}

func TestHandleAction_UnrecognizedIsInert(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepChooseFocus
	state.Domain = domain.Legal

	turn := e.HandleAction(state, Action{Type: ActionType("EXPLODE")})
	assert.Equal(t, state, turn.State)
	assert.NotEmpty(t, turn.Message.QuickReplies)

	noop := e.HandleAction(state, Action{Type: ActionNoop})
	assert.Equal(t, state, noop.State)
}

func TestRenderResults_ZeroMatchesFallsBackToEntryPoints(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangEN)
	state.Step = StepChooseFocus

	turn := e.HandleText(state, "zebra spacecraft")

	assert.Equal(t, noResultsText(i18n.LangEN), turn.Message.Text)
	require.NotEmpty(t, turn.Message.Cards)
	for _, card := range turn.Message.Cards {
		assert.NotNil(t, card.Contact, "fallback cards are entry points")
	}
	require.NotNil(t, turn.Recommendation)
	assert.Equal(t, ReasonLowConfidence, turn.Recommendation.Reason)
}

func TestEveryMessageHasQuickReplies(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1)
	state := e.InitState(i18n.LangEN)

	turns := []Turn{
		{State: state, Message: e.Welcome(i18n.LangEN)},
		e.HandleText(state, "I can't afford my hospital bill"),
		e.HandleText(state, "hello there"),
		e.HandleText(state, ""),
		e.HandleText(state, "no place to stay tonight"),
		e.HandleAction(state, Action{Type: ActionSetDomain, Domain: domain.Mental}),
		e.HandleAction(state, Action{Type: ActionEnd}),
		e.HandleAction(state, Action{Type: ActionEscalate}),
	}
	for i, turn := range turns {
		assert.NotEmpty(t, turn.Message.QuickReplies, "turn %d", i)
	}
}

func TestDeterministicReplay(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)

	run := func() []Turn {
		state := e.InitState(i18n.LangEN)
		var turns []Turn
		t1 := e.HandleText(state, "I can't afford my hospital bill")
		turns = append(turns, t1)
		t2 := e.HandleText(t1.State, "chas clinic")
		turns = append(turns, t2)
		t3 := e.HandleAction(t2.State, Action{Type: ActionSetFocus, Focus: FocusSteps})
		turns = append(turns, t3)
		return turns
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].State, second[i].State, "turn %d state", i)
		assert.Equal(t, first[i].Message, second[i].Message, "turn %d message", i)
	}
}

func TestChineseConversation(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	state := e.InitState(i18n.LangZH)

	turn := e.HandleText(state, "我要看医生")
	assert.Equal(t, StepChooseFocus, turn.State.Step)
	assert.Equal(t, domain.Healthcare, turn.State.Domain)
	assert.Contains(t, turn.Message.Text, "医疗保健")
}
