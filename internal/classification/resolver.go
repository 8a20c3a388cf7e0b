package classification

import (
	"log/slog"
	"strings"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// DefaultCategory is where unknown codes and labels land: the equity family
// of shares and certificates, the broadest population in the extracts.
const DefaultCategory = domain.CategoryEquity

// legacyLabels maps free-text instrument type labels from older worklist
// sources to category letters. Lookup is case-insensitive exact match.
var legacyLabels = map[string]domain.Category{
	"bond":        domain.CategoryDebt,
	"debt":        domain.CategoryDebt,
	"note":        domain.CategoryDebt,
	"equity":      domain.CategoryEquity,
	"share":       domain.CategoryEquity,
	"certificate": domain.CategoryEquity,
	"fund":        domain.CategoryCollective,
	"etf":         domain.CategoryCollective,
	"future":      domain.CategoryFutures,
	"forward":     domain.CategoryFutures,
	"structured":  domain.CategoryStructured,
	"index":       domain.CategoryIndex,
	"emission":    domain.CategoryIndex,
	"derivative":  domain.CategoryDerivative,
	"option":      domain.CategoryOptions,
	"warrant":     domain.CategoryRights,
	"right":       domain.CategoryRights,
	"swap":        domain.CategorySwaps,
}

// classificationCodeLength is the fixed length of a classification code.
const classificationCodeLength = 6

// IsClassificationCode reports whether the value has the shape of a proper
// classification code: exactly six uppercase letters. Anything else is
// treated as a legacy free-text label. Labels like "fund" or "swap" happen to
// start with valid category letters, so shape must be checked before the
// first character is trusted.
func IsClassificationCode(code string) bool {
	if len(code) != classificationCodeLength {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ResolveCode maps a classification code or legacy type label to a category.
// A proper code's first character is authoritative; other values go through
// the legacy label table. Unknown values resolve to DefaultCategory with a
// logged warning.
func ResolveCode(code string) domain.Category {
	code = strings.TrimSpace(code)
	if code == "" {
		// Worklists without codes are common; no warning for them.
		return DefaultCategory
	}

	if IsClassificationCode(code) {
		if category, ok := domain.CategoryFromLetter(code[:1]); ok {
			return category
		}
		slog.Warn("classification code with unknown category letter, using default category",
			slog.String("code", code),
			slog.String("category", string(DefaultCategory)))
		return DefaultCategory
	}

	if category, ok := legacyLabels[strings.ToLower(code)]; ok {
		return category
	}

	slog.Warn("unknown classification code, using default category",
		slog.String("code", code),
		slog.String("category", string(DefaultCategory)))
	return DefaultCategory
}
