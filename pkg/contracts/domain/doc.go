// Package domain defines the shared entities of the transparency calculation
// pipeline: raw regulatory records, instrument categories, work items, and the
// persisted TransparencyCalculation/Threshold shapes.
//
// Types here carry no behavior beyond accessors and validation; all processing
// lives in the internal packages.
package domain
