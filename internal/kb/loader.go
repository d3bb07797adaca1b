package kb

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/carebridge-sg/carebot-go/internal/errors"
)

//go:embed seed.json
var seedJSON []byte

// LoadEmbedded parses the catalog compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	c, err := Parse(seedJSON)
	if err != nil {
		return nil, &apperrors.LoadError{Source: "embedded seed", Err: err}
	}
	return c, nil
}

// LoadFile parses the catalog from a local JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperrors.LoadError{Source: path, Err: err}
	}
	c, err := Parse(data)
	if err != nil {
		return nil, &apperrors.LoadError{Source: path, Err: err}
	}
	return c, nil
}

// Parse decodes and validates a catalog. Record order is preserved exactly
// as it appears in the input.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Schemes) == 0 {
		return apperrors.ErrEmptyKnowledgeBase
	}
	seen := make(map[string]struct{}, len(c.Schemes))
	for i, s := range c.Schemes {
		if s.ID == "" {
			return fmt.Errorf("scheme %d: %w: missing id", i, apperrors.ErrInvalidInput)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("scheme %q: %w: duplicate id", s.ID, apperrors.ErrInvalidInput)
		}
		seen[s.ID] = struct{}{}
		if s.Name.EN == "" {
			return fmt.Errorf("scheme %q: %w: missing english name", s.ID, apperrors.ErrInvalidInput)
		}
		if s.Category == "" {
			return fmt.Errorf("scheme %q: %w: missing category", s.ID, apperrors.ErrInvalidInput)
		}
	}
	for i, ep := range c.EntryPoints {
		if ep.ID == "" {
			return fmt.Errorf("entry point %d: %w: missing id", i, apperrors.ErrInvalidInput)
		}
	}
	return nil
}
