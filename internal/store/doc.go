// Package store is the persistence boundary of the pipeline. The core
// depends only on the TransparencyStore contract; the Postgres implementation
// and the in-memory implementation used for tests and database-less runs both
// satisfy it.
//
// Create persists a calculation and its thresholds atomically, all or
// nothing, one transaction per calculation. Delete cascades to the owned
// thresholds.
package store
