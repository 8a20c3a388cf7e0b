package domain

// Category is the closed enumeration of instrument category letters used by
// the transparency extracts. The letter doubles as the first character of a
// classification (CFI-style) code and as the category token in source file
// names.
type Category string

const (
	CategoryCollective Category = "C" // collective investment undertakings and ETFs
	CategoryDebt       Category = "D" // debt instruments (bonds and notes)
	CategoryEquity     Category = "E" // equity shares, depositary receipts and certificates
	CategoryFutures    Category = "F" // futures and forwards
	CategoryStructured Category = "H" // structured finance products
	CategoryIndex      Category = "I" // index-linked and emission allowance instruments
	CategoryDerivative Category = "J" // complex derivatives
	CategoryOptions    Category = "O" // options
	CategoryRights     Category = "R" // rights and warrants
	CategorySwaps      Category = "S" // swaps
)

// AllCategories lists every valid category letter in sorted order.
var AllCategories = []Category{
	CategoryCollective,
	CategoryDebt,
	CategoryEquity,
	CategoryFutures,
	CategoryStructured,
	CategoryIndex,
	CategoryDerivative,
	CategoryOptions,
	CategoryRights,
	CategorySwaps,
}

var categoryDescriptions = map[Category]string{
	CategoryCollective: "collective investment undertakings and ETFs",
	CategoryDebt:       "debt instruments",
	CategoryEquity:     "equity shares, depositary receipts and certificates",
	CategoryFutures:    "futures and forwards",
	CategoryStructured: "structured finance products",
	CategoryIndex:      "index-linked and emission allowance instruments",
	CategoryDerivative: "complex derivatives",
	CategoryOptions:    "options",
	CategoryRights:     "rights and warrants",
	CategorySwaps:      "swaps",
}

// Valid reports whether c is one of the enumerated category letters.
func (c Category) Valid() bool {
	_, ok := categoryDescriptions[c]
	return ok
}

// Description returns the human-readable description of the category.
func (c Category) Description() string {
	if d, ok := categoryDescriptions[c]; ok {
		return d
	}
	return "unknown"
}

// Family returns the source file family the category is published under.
// Equity shares travel in the equity family; every other category in the
// non-equity family.
func (c Category) Family() FileFamily {
	if c == CategoryEquity {
		return FamilyEquity
	}
	return FamilyNonEquity
}

// CategoryFromLetter maps a single-letter string to a Category.
func CategoryFromLetter(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// FileFamily identifies one of the two parallel extract file families.
type FileFamily string

const (
	// FamilyEquity is the full equity transparency extract family.
	FamilyEquity FileFamily = "FULECR"
	// FamilyNonEquity is the full non-equity transparency extract family.
	FamilyNonEquity FileFamily = "FULNCR"
)

// Valid reports whether f is one of the two known family tokens.
func (f FileFamily) Valid() bool {
	return f == FamilyEquity || f == FamilyNonEquity
}
