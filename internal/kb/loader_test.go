package kb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/carebridge-sg/carebot-go/internal/errors"
	"github.com/carebridge-sg/carebot-go/internal/i18n"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Schemes)
	assert.NotEmpty(t, c.EntryPoints)

	// Seed must cover every support category so domain boosts always have
	// at least one candidate.
	categories := make(map[string]bool)
	for _, s := range c.Schemes {
		categories[s.Category] = true
	}
	for _, want := range []string{
		"financial_support", "housing_support", "healthcare_support",
		"seniors_support", "disability_support", "legal_support", "mental_support",
	} {
		assert.True(t, categories[want], "missing category %s", want)
	}
}

func TestLoadEmbedded_EntryPointContacts(t *testing.T) {
	t.Parallel()

	c, err := LoadEmbedded()
	require.NoError(t, err)

	var sosHotline string
	for _, ep := range c.EntryPoints {
		if ep.ID == "sos" && ep.Contact != nil {
			sosHotline = ep.Contact.Hotline
		}
	}
	assert.Equal(t, "1767", sosHotline)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, seedJSON, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Schemes)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var loadErr *apperrors.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty scheme list",
			input:   `{"schemes": [], "entry_points": []}`,
			wantErr: apperrors.ErrEmptyKnowledgeBase,
		},
		{
			name:    "missing scheme id",
			input:   `{"schemes": [{"name": {"en": "X"}, "category": "legal_support"}]}`,
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name: "duplicate scheme id",
			input: `{"schemes": [
				{"id": "a", "name": {"en": "A"}, "category": "legal_support"},
				{"id": "a", "name": {"en": "B"}, "category": "legal_support"}
			]}`,
			wantErr: apperrors.ErrInvalidInput,
		},
		{
			name:    "missing category",
			input:   `{"schemes": [{"id": "a", "name": {"en": "A"}}]}`,
			wantErr: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSchemeByID(t *testing.T) {
	t.Parallel()

	c, err := LoadEmbedded()
	require.NoError(t, err)

	s, ok := c.SchemeByID("chas")
	require.True(t, ok)
	assert.Equal(t, "healthcare_support", s.Category)

	_, ok = c.SchemeByID("nope")
	assert.False(t, ok)
}

func TestTextGet(t *testing.T) {
	t.Parallel()

	txt := Text{EN: "Hello", ZH: "你好"}
	assert.Equal(t, "Hello", txt.Get(i18n.LangEN))
	assert.Equal(t, "你好", txt.Get(i18n.LangZH))

	enOnly := Text{EN: "Hello"}
	assert.Equal(t, "Hello", enOnly.Get(i18n.LangZH))
}
