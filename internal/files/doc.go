// Package files models the source-file side of the pipeline: the strict
// extract filename convention, per-category directory discovery, and worklist
// loading.
//
// File names follow {family}_{yyyymmdd}_{category}_{part}of{total}_{suffix}.csv
// where family is FULECR (equity) or FULNCR (non-equity) and category is a
// single enumerated letter.
//
// Discovery returns files in ascending lexicographic name order. Dataset
// deduplication keeps the last occurrence of an identifier, so this ordering
// is a load-bearing invariant: within a family and category the date segment
// sorts lexicographically with recency, making keep-last equal keep-newest.
package files
