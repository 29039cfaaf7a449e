package textanalysis

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"

	"TickerLens/internal/model"
)

// ProseExtractor implements EntityExtractor on the prose NLP toolkit.
type ProseExtractor struct{}

// NewProseExtractor creates the prose-backed entity extractor.
func NewProseExtractor() *ProseExtractor { return &ProseExtractor{} }

func (p *ProseExtractor) Extract(text string) ([]model.Entity, []string, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, nil, fmt.Errorf("prose document: %w", err)
	}

	ents := doc.Entities()
	entities := make([]model.Entity, 0, len(ents))
	for _, e := range ents {
		entities = append(entities, model.Entity{Text: e.Text, Label: e.Label})
	}

	toks := doc.Tokens()
	tokens := make([]string, 0, len(toks))
	for _, t := range toks {
		tokens = append(tokens, t.Text)
	}
	return entities, tokens, nil
}
