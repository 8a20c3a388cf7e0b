package files

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// worklistHeaders are the first-column spellings that mark a leading header
// row rather than a work item.
var worklistHeaders = map[string]struct{}{
	"identifier": {},
	"isin":       {},
	"id":         {},
	"instrument": {},
}

// LoadWorklist reads a worklist CSV of identifier[,classification_code] rows.
// A leading header row is recognized and skipped. Blank identifiers are
// ignored.
func LoadWorklist(path string) ([]domain.WorkItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open worklist %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse worklist %s: %w", path, err)
	}

	var items []domain.WorkItem
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		identifier := strings.TrimSpace(row[0])
		if identifier == "" {
			continue
		}
		if i == 0 {
			if _, header := worklistHeaders[strings.ToLower(identifier)]; header {
				continue
			}
		}

		item := domain.WorkItem{Identifier: identifier}
		if len(row) > 1 {
			item.ClassificationCode = strings.TrimSpace(row[1])
		}
		items = append(items, item)
	}

	return items, nil
}
