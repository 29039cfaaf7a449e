// Package headlines supplies the text corpus for a symbol. The shipped
// source is templated; a live news feed can replace it without touching
// anything downstream.
package headlines

import (
	"fmt"

	"TickerLens/internal/model"
)

// Source supplies a fixed-size ordered headline batch for a symbol.
type Source interface {
	ForSymbol(symbol string) []model.Headline
}

// templates are filled with the symbol in order. The batch is small on
// purpose: each item goes through two extractor calls per refresh.
var templates = []string{
	"%s stock surges after record quarterly earnings announcement",
	"Analysts remain cautious on %s amid broader market volatility",
	"%s unveils new product line, investors react positively",
	"Regulatory concerns weigh on %s shares in early trading",
	"%s CEO discusses growth strategy and expansion into new markets",
}

// TemplateSource renders the fixed headline templates for any symbol.
type TemplateSource struct{}

// NewTemplateSource creates the templated corpus source.
func NewTemplateSource() *TemplateSource { return &TemplateSource{} }

func (s *TemplateSource) ForSymbol(symbol string) []model.Headline {
	items := make([]model.Headline, len(templates))
	for i, tpl := range templates {
		items[i] = model.Headline{Symbol: symbol, Text: fmt.Sprintf(tpl, symbol)}
	}
	return items
}
