package dialog

import (
	"fmt"

	"github.com/carebridge-sg/carebot-go/internal/domain"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
)

// Dynamic message wording lives here rather than in the i18n chrome table
// because it depends on runtime classification outcomes.

func welcomeText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "您好！我可以帮您寻找合适的援助计划。请告诉我您需要哪方面的帮助，或从下面选择一个主题。"
	}
	return "Hi! I can help you find support schemes that may fit your situation. Tell me what you need help with, or pick a topic below."
}

func crisisText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "听起来您现在非常难受。您并不孤单，请立即联系以下的专业辅导服务，他们随时愿意倾听。"
	}
	return "It sounds like you are going through a very difficult time. You are not alone. Please reach out to the services below right away; they are ready to listen."
}

func urgencyText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "这听起来很紧急。请立即联系以下服务，他们可以马上为您安排援助。之后我也可以帮您寻找长期的援助计划。"
	}
	return "This sounds urgent. Please contact the services below right away; they can arrange immediate help. Afterwards I can help you look for longer-term support."
}

func domainIntroText(lang i18n.Lang, d domain.Domain) string {
	label := d.Label(lang)
	if lang == i18n.LangZH {
		return fmt.Sprintf("明白了，我们来看看「%s」方面的援助。您想先了解什么？也可以直接描述您的情况。", label)
	}
	return fmt.Sprintf("I understand. Let's look at %s together. What would you like to know first? You can also just describe your situation.", label)
}

func topicsText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "好的，您想了解哪个主题？也可以直接描述您的情况。"
	}
	return "Sure. Which topic would you like to look at? You can also just describe your situation."
}

func clarifyTopicText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "我不太确定哪个主题最适合您。请从下面选择一个，或换个说法再告诉我一次。"
	}
	return "I'm not sure which topic fits best. Could you pick one below, or describe it another way?"
}

func emptyInputText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "请告诉我您需要哪方面的帮助，或从下面选择一个选项。"
	}
	return "Please tell me what you need help with, or choose an option below."
}

func resultsText(lang i18n.Lang, shown, total int) string {
	if lang == i18n.LangZH {
		return fmt.Sprintf("为您找到以下计划（显示 %d 项，共 %d 项）：", shown, total)
	}
	return fmt.Sprintf("Here is what I found (showing %d of %d):", shown, total)
}

func lowConfidenceText(lang i18n.Lang, shown, total int) string {
	if lang == i18n.LangZH {
		return fmt.Sprintf("我不完全确定这些是否符合您的情况（显示 %d 项，共 %d 项）。您也可以直接联系下面的服务：", shown, total)
	}
	return fmt.Sprintf("I'm not fully sure these match your situation (showing %d of %d). You can also contact the services below directly:", shown, total)
}

func noResultsText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "抱歉，我没有找到合适的计划。以下服务可以直接为您提供帮助："
	}
	return "Sorry, I couldn't find a matching scheme. The services below can help you directly:"
}

func noMoreResultsText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "这次搜索的结果已全部显示。需要我为您转接真人跟进吗？"
	}
	return "That's everything I have for this search. Would you like me to arrange for a person to follow up?"
}

func escalateAckText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "好的，我会请一位支援人员跟进您的情况。在此之前，下面的服务也可以直接帮到您。"
	}
	return "Okay, I'll flag this for a support officer to follow up with you. In the meantime, the services below can also help directly."
}

func closingText(lang i18n.Lang) string {
	if lang == i18n.LangZH {
		return "感谢您的使用，请多保重。需要时随时再来找我。"
	}
	return "Thank you for chatting. Take care, and come back any time you need help."
}

// focusClarifyText asks one domain-specific clarifying question when the
// user picks a focus before typing any query.
func focusClarifyText(lang i18n.Lang, d domain.Domain) string {
	questions := map[domain.Domain]map[i18n.Lang]string{
		domain.Financial:  {i18n.LangEN: "What kind of expense are you struggling with, for example daily living costs or a one-off bill?", i18n.LangZH: "您在哪方面的开销上遇到困难？例如日常生活费或一次性账单。"},
		domain.Housing:    {i18n.LangEN: "What is your housing situation, for example renting, waiting for a flat, or nowhere to stay?", i18n.LangZH: "您目前的住房情况如何？例如正在租房、等待组屋，或暂时没有住处。"},
		domain.Healthcare: {i18n.LangEN: "What kind of medical cost do you need help with, for example clinic visits or hospital bills?", i18n.LangZH: "您需要哪方面的医疗费用援助？例如看诊费或住院账单。"},
		domain.Seniors:    {i18n.LangEN: "Is this for yourself or for an elderly family member, and what support do they need?", i18n.LangZH: "是为您自己还是家中长辈？需要哪方面的支援？"},
		domain.Disability: {i18n.LangEN: "What kind of support are you looking for, for example assistive devices or daily care?", i18n.LangZH: "您在寻找哪方面的支援？例如辅助器材或日常照护。"},
		domain.Legal:      {i18n.LangEN: "What kind of legal matter is this, for example family, employment, or debt?", i18n.LangZH: "是哪方面的法律事务？例如家庭、雇佣或债务。"},
		domain.Mental:     {i18n.LangEN: "Would you like to tell me a bit about how you've been feeling lately?", i18n.LangZH: "愿意和我说说您最近的感受吗？"},
	}
	if q, ok := questions[d]; ok {
		if s, ok := q[lang]; ok && s != "" {
			return s
		}
		return q[i18n.LangEN]
	}
	if lang == i18n.LangZH {
		return "请描述一下您的情况。"
	}
	return "Could you describe your situation?"
}

// quickQueries offers domain-specific sample refinement queries.
func quickQueries(lang i18n.Lang, d domain.Domain) []string {
	samples := map[domain.Domain]map[i18n.Lang][]string{
		domain.Financial:  {i18n.LangEN: {"monthly cash assistance", "help with utility bills"}, i18n.LangZH: {"每月现金援助", "水电费援助"}},
		domain.Housing:    {i18n.LangEN: {"rental flat", "temporary shelter"}, i18n.LangZH: {"租赁组屋", "临时住所"}},
		domain.Healthcare: {i18n.LangEN: {"chas clinic", "hospital bill help"}, i18n.LangZH: {"CHAS 诊所", "医药费援助"}},
		domain.Seniors:    {i18n.LangEN: {"cash for seniors", "outpatient subsidies"}, i18n.LangZH: {"乐龄现金补贴", "门诊津贴"}},
		domain.Disability: {i18n.LangEN: {"assistive devices", "wheelchair subsidy"}, i18n.LangZH: {"辅助器材", "轮椅津贴"}},
		domain.Legal:      {i18n.LangEN: {"free legal advice", "divorce help"}, i18n.LangZH: {"免费法律咨询", "离婚援助"}},
		domain.Mental:     {i18n.LangEN: {"free counselling", "mental health check"}, i18n.LangZH: {"免费心理辅导", "心理健康评估"}},
	}
	if s, ok := samples[d]; ok {
		if qs, ok := s[lang]; ok && len(qs) > 0 {
			return qs
		}
		return s[i18n.LangEN]
	}
	return nil
}
