// Package exporter writes batch run output for human consumption: a CSV of
// the persisted calculations and an Excel workbook with a run summary sheet.
// Exports are a convenience on top of the store, never the system of record.
package exporter
