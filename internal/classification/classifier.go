package classification

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/internal/files"
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// heuristicRule is one entry of the ordered record-classification decision
// table. Rules are evaluated top to bottom; the first match wins.
type heuristicRule struct {
	name     string
	category domain.Category
	matches  func(domain.Record) bool
}

// heuristicRules is the record-classification decision table. Order is a
// contract: a row describing a "structured note" is debt, not a structured
// product, because the debt rule runs first.
var heuristicRules = []heuristicRule{
	{
		name:     "debt by code or keyword",
		category: domain.CategoryDebt,
		matches: func(r domain.Record) bool {
			if cfi, ok := r.Value(domain.FieldCFI); ok && strings.HasPrefix(strings.ToUpper(cfi), string(domain.CategoryDebt)) {
				return true
			}
			return hasKeyword(r, "bond", "note", "debenture", "obligation")
		},
	},
	{
		name:     "fund or ETF by keyword",
		category: domain.CategoryCollective,
		matches: func(r domain.Record) bool {
			return hasKeyword(r, "fund", "etf", "ucits", "sicav")
		},
	},
	{
		name:     "structured product by keyword",
		category: domain.CategoryStructured,
		matches: func(r domain.Record) bool {
			return hasKeyword(r, "structured", "securitised", "securitized", "sfp")
		},
	},
	{
		name:     "warrant by keyword",
		category: domain.CategoryRights,
		matches: func(r domain.Record) bool {
			return hasKeyword(r, "warrant")
		},
	},
	{
		name:     "option by keyword",
		category: domain.CategoryOptions,
		matches: func(r domain.Record) bool {
			return hasKeyword(r, "option")
		},
	},
	{
		name:     "index-linked by keyword",
		category: domain.CategoryIndex,
		matches: func(r domain.Record) bool {
			return hasKeyword(r, "index", "emission", "allowance")
		},
	},
	{
		name:     "complex derivative by criterion pairs",
		category: domain.CategoryDerivative,
		matches: func(r domain.Record) bool {
			return CountCriterionPairs(r) >= 1
		},
	},
}

// hasKeyword reports whether the record's description field contains any of
// the given keywords, case-insensitively.
func hasKeyword(r domain.Record, keywords ...string) bool {
	desc, ok := r.Value(domain.FieldDescription)
	if !ok {
		return false
	}
	desc = strings.ToLower(desc)
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// CountCriterionPairs counts the numbered CritNm<i>/CritVal<i> pairs carrying
// values. Derivative sub-class rows are the only ones that publish these.
func CountCriterionPairs(r domain.Record) int {
	count := 0
	for i := 1; ; i++ {
		nameField := fmt.Sprintf("CritNm%d", i)
		valueField := fmt.Sprintf("CritVal%d", i)
		if _, ok := r[nameField]; !ok {
			if _, ok := r[valueField]; !ok {
				break
			}
		}
		if r.Has(nameField) && r.Has(valueField) {
			count++
		}
	}
	return count
}

// ClassifyFileName returns the category encoded in an extract file name. The
// filename convention is strict, so a successful parse is deterministic and
// authoritative.
func ClassifyFileName(name string) (domain.Category, bool) {
	desc, err := files.ParseName(name)
	if err != nil {
		return "", false
	}
	return desc.Category, true
}

// ClassifyRecord infers a category from record fields through the ordered
// decision table. It never fails: records matching no rule fall back to
// DefaultCategory with a logged warning.
func ClassifyRecord(r domain.Record) domain.Category {
	for _, rule := range heuristicRules {
		if rule.matches(r) {
			return rule.category
		}
	}

	slog.Warn("record matched no classification rule, using default category",
		slog.String("identifier", recordIdentifier(r)),
		slog.String("category", string(DefaultCategory)))
	return DefaultCategory
}

// Classify resolves a category for a record extracted from the named file.
// The filename wins when it obeys the extract convention; otherwise the
// record heuristic decides.
func Classify(fileName string, r domain.Record) domain.Category {
	if category, ok := ClassifyFileName(fileName); ok {
		return category
	}
	return ClassifyRecord(r)
}

func recordIdentifier(r domain.Record) string {
	if id, ok := r.Value(domain.FieldID); ok {
		return id
	}
	if id, ok := r.Value(domain.FieldISIN); ok {
		return id
	}
	return "unknown"
}
