// Package assistant implements the stock-lookup chat assistant.
package assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lavanyassgit/Medicine-AI/pkg/catalog"
)

type Intent string

const (
	IntentStock    Intent = "stock"
	IntentReport   Intent = "report"
	IntentHelp     Intent = "help"
	IntentFallback Intent = "fallback"
)

type Action string

const (
	ActionNone  Action = ""
	ActionCall  Action = "call"
	ActionAlert Action = "alert"
)

const (
	GreetingText = "Hello! I'm MediCheck AI Assistant. Ask me about medicine availability, quality checks, or any help you need."
	ReportText   = "⚠️ If you suspect a wrong, counterfeit, or low-quality medicine, please contact the Government Medicine Call Centre immediately."
	HelpText     = "I can help you with:\n• Check medicine stock availability\n• Report suspicious or wrong medicines\n• Contact government helpline\n• Navigate the system\n\nJust ask me anything!"
	FallbackText = "I'm here to help! You can ask me about medicine stock, report issues, or get help with the system."
)

// CallTargets are the helpline numbers attached to counterfeit reports.
var CallTargets = []string{"1800-11-4000", "1915"}

var (
	stockKeywords  = []string{"stock", "available", "availability"}
	reportKeywords = []string{"wrong", "fake", "counterfeit", "suspicious", "report"}
	helpKeywords   = []string{"help", "how", "what"}
)

type StockLookup interface {
	Lookup(query string) (catalog.Medicine, bool)
}

type Response struct {
	Intent      Intent
	Text        string
	Action      Action
	CallTargets []string
	Medicine    *catalog.Medicine
	// StockAlert is set when a found medicine is out of stock and a
	// follow-up alert should be delivered.
	StockAlert bool
}

type Engine struct {
	stock StockLookup
}

func NewEngine(stock StockLookup) *Engine {
	return &Engine{stock: stock}
}

// Respond classifies input with the first matching rule: stock, then
// counterfeit report, then help, then a raw catalog lookup.
func (e *Engine) Respond(input string) Response {
	lower := strings.ToLower(input)

	switch {
	case containsAny(lower, stockKeywords):
		term := stockSearchTerm(input)
		if resp, found := e.lookup(IntentStock, term); found {
			return resp
		}
		return Response{
			Intent: IntentStock,
			Text:   fmt.Sprintf("Medicine \"%s\" not found in our database.", term),
		}
	case containsAny(lower, reportKeywords):
		return Response{
			Intent:      IntentReport,
			Text:        ReportText,
			Action:      ActionCall,
			CallTargets: append([]string(nil), CallTargets...),
		}
	case containsAny(lower, helpKeywords):
		return Response{Intent: IntentHelp, Text: HelpText}
	}

	if resp, found := e.lookup(IntentFallback, input); found {
		return resp
	}
	return Response{Intent: IntentFallback, Text: FallbackText}
}

func (e *Engine) lookup(intent Intent, term string) (Response, bool) {
	m, found := e.stock.Lookup(term)
	if !found {
		return Response{}, false
	}
	if !m.InStock() {
		return Response{
			Intent:     intent,
			Text:       fmt.Sprintf("⚠️ %s is OUT OF STOCK! Stock quantity: %d units.", m.Name, m.Stock),
			Action:     ActionAlert,
			Medicine:   &m,
			StockAlert: true,
		}, true
	}
	return Response{
		Intent:   intent,
		Text:     fmt.Sprintf("✓ %s is available in stock. Quantity: %d units.", m.Name, m.Stock),
		Medicine: &m,
	}, true
}

// stockSearchTerm keeps every whitespace-separated token longer than three
// characters, trigger keywords included.
func stockSearchTerm(input string) string {
	var kept []string
	for _, word := range strings.Fields(input) {
		if utf8.RuneCountInString(word) > 3 {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
