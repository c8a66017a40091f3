// Package voice turns free-text utterances into transaction suggestions.
// Parsing is best-effort: a suggestion is never authoritative and the
// user confirms or edits every field before anything is persisted.
package voice

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
)

// amountRe matches the first run of digits with an optional
// two-decimal-digit fraction.
var amountRe = regexp.MustCompile(`\d+(\.\d{2})?`)

// incomeKeywords flip the inferred type to income. Anything else
// defaults to expense; ambiguous text is never rejected.
var incomeKeywords = []string{"earned", "received", "income"}

// synonymRule maps spoken words to a category when no category name
// appears verbatim in the text. First matching rule wins.
type synonymRule struct {
	keywords []string
	category string
}

var synonymRules = []synonymRule{
	{[]string{"grocery", "groceries", "food", "vegetable"}, "Groceries"},
	{[]string{"utility", "utilities", "electricity", "water bill", "internet"}, "Utilities"},
	{[]string{"coffee", "restaurant", "lunch", "dinner", "pizza"}, "Eating Out"},
	{[]string{"rent"}, "Rent"},
	{[]string{"emi", "loan"}, "EMI"},
	{[]string{"flight", "hotel", "trip", "vacation"}, "Travel"},
	{[]string{"uber", "taxi", "cab", "bus", "petrol", "fuel", "metro"}, "Transport"},
	{[]string{"salon", "haircut", "barber"}, "Grooming & PC"},
}

// Suggestion is a partial transaction extracted from an utterance.
// Absent fields are the only failure mode; Parse never errors.
type Suggestion struct {
	// Amount is nil when the text contains no digits.
	Amount *decimal.Decimal
	// RawAmount is the matched substring, e.g. "500" or "12.50".
	RawAmount string
	Type      models.TransactionType
	// CategoryName is empty when nothing matched.
	CategoryName string
	// Description carries the original text verbatim.
	Description string
}

// Parse extracts amount, type, and category suggestions from text.
// Matching is case-insensitive. categories is the caller's list of
// known category names, tried before the synonym table.
func Parse(text string, categories []string) Suggestion {
	lower := strings.ToLower(text)
	s := Suggestion{
		Type:        models.TransactionTypeExpense,
		Description: text,
	}

	if raw := amountRe.FindString(text); raw != "" {
		if amount, err := decimal.NewFromString(raw); err == nil {
			s.RawAmount = raw
			s.Amount = &amount
		}
	}

	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			s.Type = models.TransactionTypeIncome
			break
		}
	}

	s.CategoryName = matchCategory(lower, categories)
	return s
}

func matchCategory(lower string, categories []string) string {
	for _, name := range categories {
		if name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	for _, rule := range synonymRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return ""
}
