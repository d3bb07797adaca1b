// Package domain defines the closed set of support domains and the
// classifier that maps normalized user text onto one of them.
package domain

import "github.com/carebridge-sg/carebot-go/internal/i18n"

// Domain is one of the closed set of support categories.
type Domain string

const (
	Financial  Domain = "financial"
	Housing    Domain = "housing"
	Healthcare Domain = "healthcare"
	Seniors    Domain = "seniors"
	Disability Domain = "disability"
	Legal      Domain = "legal"
	Mental     Domain = "mental"
)

// All lists every domain in the fixed hard-match evaluation order.
// Ties anywhere in classification are broken by this order.
var All = []Domain{Financial, Housing, Healthcare, Seniors, Disability, Legal, Mental}

// Parse returns the Domain for id, or false when id is not a known domain.
func Parse(id string) (Domain, bool) {
	for _, d := range All {
		if string(d) == id {
			return d, true
		}
	}
	return "", false
}

// Category returns the canonical knowledge-base category tag for the domain.
func (d Domain) Category() string {
	return string(d) + "_support"
}

var labels = map[Domain]map[i18n.Lang]string{
	Financial:  {i18n.LangEN: "Financial Assistance", i18n.LangZH: "经济援助"},
	Housing:    {i18n.LangEN: "Housing Support", i18n.LangZH: "住房支持"},
	Healthcare: {i18n.LangEN: "Healthcare", i18n.LangZH: "医疗保健"},
	Seniors:    {i18n.LangEN: "Support for Seniors", i18n.LangZH: "乐龄支援"},
	Disability: {i18n.LangEN: "Disability Support", i18n.LangZH: "残障支援"},
	Legal:      {i18n.LangEN: "Legal Help", i18n.LangZH: "法律援助"},
	Mental:     {i18n.LangEN: "Mental Wellbeing", i18n.LangZH: "心理健康"},
}

// Label returns the display name of the domain in the given language.
func (d Domain) Label(lang i18n.Lang) string {
	entry, ok := labels[d]
	if !ok {
		return string(d)
	}
	if s, ok := entry[lang]; ok && s != "" {
		return s
	}
	return entry[i18n.LangEN]
}
