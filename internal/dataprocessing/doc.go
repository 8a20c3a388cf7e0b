// Package dataprocessing turns raw extract files into matched rows: it parses
// delimited source files into schemaless records, consolidates every file of
// one category into a single deduplicated in-memory dataset, and extracts all
// rows matching a worklist in one set-membership pass.
//
// # Data Flow
//
//	extract files → parser → records → DatasetBuilder → Dataset → MatchAll → per-identifier rows
//
// # Performance contract
//
// Each matching file is read and parsed exactly once per batch run regardless
// of worklist size, and matching is O(rows) over the consolidated dataset
// rather than a linear re-scan per identifier. A dataset is read-only once
// built and discarded when its category's batch completes.
//
// # Error handling
//
// A single unreadable or corrupt file is logged and skipped; it never aborts
// the category build. Values stay strings throughout; type coercion happens
// downstream during record building where failures can degrade to null.
package dataprocessing
