package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Well-known field names of the regulatory extracts. Field presence varies
// wildly between file families; every access must tolerate absence.
const (
	FieldTechRecordID      = "TechRcrdId"
	FieldID                = "Id"
	FieldISIN              = "ISIN"
	FieldFromDate          = "FrDt"
	FieldToDate            = "ToDt"
	FieldLiquidity         = "Lqdty"
	FieldTotalTransactions = "TtlNbOfTxsExctd"
	FieldTotalVolume       = "TtlVolOfTxsExctd"
	FieldDescription       = "Desc"
	FieldCFI               = "FinInstrmClssfctn"
	FieldMethodology       = "Mthdlgy"
	FieldAvgDailyTurnover  = "AvrgDalyTrnvr"
)

// dateLayouts are the date formats observed across the file families.
var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339}

// Record is one raw regulatory row: an ephemeral field-name to string-value
// mapping with no fixed schema. Accessors treat empty strings and the common
// null/NaN markers uniformly as absent.
type Record map[string]string

// missingMarkers covers the null and not-a-number spellings seen in the feeds.
var missingMarkers = map[string]struct{}{
	"":     {},
	"null": {},
	"nil":  {},
	"none": {},
	"nan":  {},
	"n/a":  {},
	"na":   {},
}

// Value returns the trimmed field value and whether it is present and
// non-missing.
func (r Record) Value(field string) (string, bool) {
	v, ok := r[field]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if _, missing := missingMarkers[strings.ToLower(v)]; missing {
		return "", false
	}
	return v, true
}

// Has reports whether the field carries a present, non-missing value.
func (r Record) Has(field string) bool {
	_, ok := r.Value(field)
	return ok
}

// Float parses the field as a float64. It returns (nil, nil) when the field
// is absent and an error only when a present value fails to parse.
func (r Record) Float(field string) (*float64, error) {
	v, ok := r.Value(field)
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("field %s: invalid number %q", field, v)
	}
	return &f, nil
}

// Int parses the field as an int64, accepting decimal notation with a zero
// fraction ("42.0") since some extracts format counts that way.
func (r Record) Int(field string) (*int64, error) {
	v, ok := r.Value(field)
	if !ok {
		return nil, nil
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int64(f)) {
		return nil, fmt.Errorf("field %s: invalid count %q", field, v)
	}
	n := int64(f)
	return &n, nil
}

// Date parses the field against the known extract date layouts.
func (r Record) Date(field string) (*time.Time, error) {
	v, ok := r.Value(field)
	if !ok {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("field %s: invalid date %q", field, v)
}

// Bool parses the field as a flag. Truthy forms are "true", "1", "yes" and
// "y"; falsy forms "false", "0", "no" and "n"; all case-insensitive.
func (r Record) Bool(field string) (*bool, error) {
	v, ok := r.Value(field)
	if !ok {
		return nil, nil
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes", "y":
		b := true
		return &b, nil
	case "false", "0", "no", "n":
		b := false
		return &b, nil
	}
	return nil, fmt.Errorf("field %s: invalid flag %q", field, v)
}

// Clone returns an independent copy of the record, used to retain the
// original row verbatim as an opaque payload.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
