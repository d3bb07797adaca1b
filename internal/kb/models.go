// Package kb holds the knowledge-base data model and its loaders.
// The catalog is loaded once at startup and treated as immutable for the
// process lifetime; record order is significant because retrieval uses it
// as the stable tie-break.
package kb

import "github.com/carebridge-sg/carebot-go/internal/i18n"

// Text is a bilingual string.
type Text struct {
	EN string `json:"en"`
	ZH string `json:"zh"`
}

// Get returns the text in the given language, falling back to English.
func (t Text) Get(lang i18n.Lang) string {
	if lang == i18n.LangZH && t.ZH != "" {
		return t.ZH
	}
	return t.EN
}

// Link is an official reference link.
type Link struct {
	Label Text   `json:"label"`
	URL   string `json:"url"`
}

// Contact is an entry point's contact block.
type Contact struct {
	Hotline string `json:"hotline,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Scheme describes one official support program.
type Scheme struct {
	ID          string   `json:"id"`
	Name        Text     `json:"name"`
	Summary     Text     `json:"summary"`
	Eligibility []Text   `json:"eligibility"`
	Steps       []Text   `json:"steps"`
	Keywords    []string `json:"keywords"`
	Category    string   `json:"category"`
	Links       []Link   `json:"links"`
}

// EntryPoint is a general-purpose official contact channel, used as the
// universal fallback when retrieval yields nothing or a crisis is detected.
type EntryPoint struct {
	ID      string   `json:"id"`
	Name    Text     `json:"name"`
	Links   []Link   `json:"links"`
	Contact *Contact `json:"contact,omitempty"`
}

// Catalog is the full knowledge base in load order.
type Catalog struct {
	Schemes     []Scheme     `json:"schemes"`
	EntryPoints []EntryPoint `json:"entry_points"`
}

// SchemeByID returns the scheme with the given identifier.
func (c *Catalog) SchemeByID(id string) (Scheme, bool) {
	for _, s := range c.Schemes {
		if s.ID == id {
			return s, true
		}
	}
	return Scheme{}, false
}
