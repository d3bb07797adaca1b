// Package i18n supplies static bilingual UI chrome strings by key.
// Dynamic message wording lives in the dialog engine because it depends on
// runtime classification outcomes; this table only covers fixed labels and
// titles the presentation layer renders verbatim.
package i18n

// Lang is a supported language tag.
type Lang string

const (
	LangEN Lang = "en"
	LangZH Lang = "zh"
)

// Normalize maps arbitrary language tags onto a supported Lang,
// defaulting to English.
func Normalize(tag string) Lang {
	switch tag {
	case "zh", "zh-Hans", "zh-Hant", "zh-CN", "zh-TW", "zh-SG":
		return LangZH
	default:
		return LangEN
	}
}

// Chrome string keys.
const (
	KeyRestart       = "restart"
	KeyBackTopics    = "back_topics"
	KeyEnd           = "end"
	KeyMoreResults   = "more_results"
	KeyEscalate      = "escalate"
	KeyFocusOverview = "focus_overview"
	KeyFocusEligible = "focus_eligibility"
	KeyFocusSteps    = "focus_steps"
	KeyUrgentHelp    = "urgent_help"
	KeyHotlineTitle  = "hotline_title"
	KeyEligibleTitle = "eligibility_title"
	KeyStepsTitle    = "steps_title"
	KeyLinksTitle    = "links_title"
)

var table = map[string]map[Lang]string{
	KeyRestart:       {LangEN: "Start over", LangZH: "重新开始"},
	KeyBackTopics:    {LangEN: "Back to topics", LangZH: "返回主题"},
	KeyEnd:           {LangEN: "End chat", LangZH: "结束对话"},
	KeyMoreResults:   {LangEN: "More results", LangZH: "更多结果"},
	KeyEscalate:      {LangEN: "Talk to a person", LangZH: "转接真人"},
	KeyFocusOverview: {LangEN: "Overview", LangZH: "概览"},
	KeyFocusEligible: {LangEN: "Eligibility", LangZH: "申请资格"},
	KeyFocusSteps:    {LangEN: "How to apply", LangZH: "申请步骤"},
	KeyUrgentHelp:    {LangEN: "I need urgent help", LangZH: "我需要紧急帮助"},
	KeyHotlineTitle:  {LangEN: "Hotline", LangZH: "热线"},
	KeyEligibleTitle: {LangEN: "Who can apply", LangZH: "谁可以申请"},
	KeyStepsTitle:    {LangEN: "How to apply", LangZH: "如何申请"},
	KeyLinksTitle:    {LangEN: "Official links", LangZH: "官方链接"},
}

// T returns the chrome string for the given key and language.
// Unknown keys return the key itself so missing entries surface in the UI
// instead of rendering blank. Unknown languages fall back to English.
func T(lang Lang, key string) string {
	entry, ok := table[key]
	if !ok {
		return key
	}
	if s, ok := entry[lang]; ok && s != "" {
		return s
	}
	return entry[LangEN]
}
