package dialog

import (
	"github.com/carebridge-sg/carebot-go/internal/domain"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
	"github.com/carebridge-sg/carebot-go/internal/kb"
	"github.com/carebridge-sg/carebot-go/internal/retrieve"
)

// overviewSectionLimit abbreviates eligibility and steps on overview cards.
const overviewSectionLimit = 2

func cardLinks(links []kb.Link, lang i18n.Lang) []CardLink {
	out := make([]CardLink, 0, len(links))
	for _, l := range links {
		out = append(out, CardLink{Label: l.Label.Get(lang), URL: l.URL})
	}
	return out
}

func texts(items []kb.Text, lang i18n.Lang, limit int) []string {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	out := make([]string, 0, limit)
	for _, item := range items[:limit] {
		out = append(out, item.Get(lang))
	}
	return out
}

// schemeCard shapes one result card according to the current focus.
func schemeCard(s kb.Scheme, lang i18n.Lang, focus Focus) Card {
	card := Card{
		Title: s.Name.Get(lang),
		Links: cardLinks(s.Links, lang),
		Focus: focus,
	}
	switch focus {
	case FocusEligibility:
		card.Eligibility = texts(s.Eligibility, lang, 0)
	case FocusSteps:
		card.Steps = texts(s.Steps, lang, 0)
	default:
		card.Summary = s.Summary.Get(lang)
		card.Eligibility = texts(s.Eligibility, lang, overviewSectionLimit)
		card.Steps = texts(s.Steps, lang, overviewSectionLimit)
	}
	return card
}

func schemeCards(results []retrieve.Result, lang i18n.Lang, focus Focus) []Card {
	cards := make([]Card, 0, len(results))
	for _, res := range results {
		cards = append(cards, schemeCard(res.Scheme, lang, focus))
	}
	return cards
}

// entryPointCards renders the universal fallback contacts.
func entryPointCards(eps []kb.EntryPoint, lang i18n.Lang) []Card {
	cards := make([]Card, 0, len(eps))
	for _, ep := range eps {
		cards = append(cards, Card{
			Title:   ep.Name.Get(lang),
			Links:   cardLinks(ep.Links, lang),
			Contact: ep.Contact,
		})
	}
	return cards
}

// topicMenu offers every domain plus an urgent-help shortcut.
func topicMenu(lang i18n.Lang) []QuickReply {
	replies := make([]QuickReply, 0, len(domain.All)+1)
	for _, d := range domain.All {
		replies = append(replies, QuickReply{
			ID:     "domain:" + string(d),
			Label:  d.Label(lang),
			Action: Action{Type: ActionSetDomain, Domain: d},
		})
	}
	replies = append(replies, QuickReply{
		ID:     "urgent",
		Label:  i18n.T(lang, i18n.KeyUrgentHelp),
		Action: Action{Type: ActionUrgent},
	})
	return replies
}

func focusReplies(lang i18n.Lang) []QuickReply {
	return []QuickReply{
		{ID: "focus:overview", Label: i18n.T(lang, i18n.KeyFocusOverview), Action: Action{Type: ActionSetFocus, Focus: FocusOverview}},
		{ID: "focus:eligibility", Label: i18n.T(lang, i18n.KeyFocusEligible), Action: Action{Type: ActionSetFocus, Focus: FocusEligibility}},
		{ID: "focus:steps", Label: i18n.T(lang, i18n.KeyFocusSteps), Action: Action{Type: ActionSetFocus, Focus: FocusSteps}},
	}
}

func backReply(lang i18n.Lang) QuickReply {
	return QuickReply{ID: "back", Label: i18n.T(lang, i18n.KeyBackTopics), Action: Action{Type: ActionBackTopics}}
}

func restartReply(lang i18n.Lang) QuickReply {
	return QuickReply{ID: "restart", Label: i18n.T(lang, i18n.KeyRestart), Action: Action{Type: ActionRestart}}
}

func endReply(lang i18n.Lang) QuickReply {
	return QuickReply{ID: "end", Label: i18n.T(lang, i18n.KeyEnd), Action: Action{Type: ActionEnd}}
}

func escalateReply(lang i18n.Lang) QuickReply {
	return QuickReply{ID: "escalate", Label: i18n.T(lang, i18n.KeyEscalate), Action: Action{Type: ActionEscalate}}
}

// focusMenu is shown right after a domain is chosen.
func focusMenu(lang i18n.Lang) []QuickReply {
	replies := focusReplies(lang)
	replies = append(replies, backReply(lang), restartReply(lang))
	return replies
}

// queryMenu offers domain-specific sample queries plus navigation.
func queryMenu(lang i18n.Lang, d domain.Domain) []QuickReply {
	var replies []QuickReply
	for i, q := range quickQueries(lang, d) {
		replies = append(replies, QuickReply{
			ID:     "query:" + string(rune('0'+i)),
			Label:  q,
			Text:   q,
			Action: Action{Type: ActionAddQuery, Text: q},
		})
	}
	replies = append(replies, backReply(lang), restartReply(lang))
	return replies
}

// resultsMenu assembles the quick replies under a result page.
func resultsMenu(lang i18n.Lang, hasMore, lowConfidence bool) []QuickReply {
	replies := focusReplies(lang)
	if hasMore {
		replies = append(replies, QuickReply{
			ID:     "more",
			Label:  i18n.T(lang, i18n.KeyMoreResults),
			Action: Action{Type: ActionMoreResults},
		})
	}
	if lowConfidence {
		replies = append(replies, escalateReply(lang))
	}
	replies = append(replies, backReply(lang), restartReply(lang), endReply(lang))
	return replies
}

// crisisMenu keeps the user an actionable next step during safety resets.
func crisisMenu(lang i18n.Lang) []QuickReply {
	return []QuickReply{escalateReply(lang), restartReply(lang), endReply(lang)}
}
