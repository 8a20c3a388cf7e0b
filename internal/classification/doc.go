// Package classification infers instrument categories from the partial and
// ambiguous signals available before any file is scanned: extract file names,
// classification codes, legacy type labels, and raw record heuristics.
//
// The record heuristic is an explicit ordered decision table. Precedence is a
// tested contract: debt signals beat fund signals, fund signals beat
// structured-product signals, and so on down to the equity default. Callers
// never receive an error; ambiguity degrades to a conservative default with a
// logged warning.
package classification
