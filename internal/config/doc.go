// Package config loads and validates the pipeline configuration: source
// directories, logging, liquidity inference thresholds and optional database
// settings. Values come from an optional YAML file overlaid by MDAPI_*
// environment variables; struct tags carry the defaults and the validation
// rules.
package config
