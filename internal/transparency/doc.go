// Package transparency builds canonical transparency calculations from
// matched raw rows and orchestrates the whole batch run.
//
// # Components
//
//  1. RecordBuilder: validates and transforms one raw row into a
//     TransparencyCalculation plus its owned thresholds
//  2. ThresholdExtractor: pulls the recognized pre/post-trade threshold
//     fields out of a row
//  3. LiquidityEngine: decides the nullable liquidity flag when no explicit
//     value is present
//  4. Pipeline: worklist → per-category consolidation → batch match →
//     build → persist, with contained per-category fallback
//
// # Error handling
//
// A row failing validation is skipped and logged; a whole-category batch
// failure degrades to per-identifier extraction for that category only;
// persistence failures surface as-is, one transaction per calculation. A run
// always returns partial-result counts and never aborts wholesale.
package transparency
