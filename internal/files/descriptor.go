package files

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// namePattern is the strict extract filename convention. The category letter
// group is kept open so callers can distinguish "not an extract" from "an
// extract with an unknown category letter".
var namePattern = regexp.MustCompile(`^(FULECR|FULNCR)_(\d{8})_([A-Z])_(\d+)of(\d+)_([A-Za-z0-9-]+)\.csv$`)

// Descriptor is the parsed form of an extract file name.
type Descriptor struct {
	Family   domain.FileFamily
	Date     time.Time
	Category domain.Category
	Part     int
	Total    int
	Suffix   string
	Name     string
}

// ParseName parses an extract file name. It returns an error for names that
// do not obey the convention or carry an unknown category letter.
func ParseName(name string) (*Descriptor, error) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return nil, fmt.Errorf("file name %q does not match the extract convention", name)
	}

	date, err := time.Parse("20060102", m[2])
	if err != nil {
		return nil, fmt.Errorf("file name %q: invalid date segment %q", name, m[2])
	}

	category, ok := domain.CategoryFromLetter(m[3])
	if !ok {
		return nil, fmt.Errorf("file name %q: unknown category letter %q", name, m[3])
	}

	part, _ := strconv.Atoi(m[4])
	total, _ := strconv.Atoi(m[5])
	if part < 1 || total < 1 || part > total {
		return nil, fmt.Errorf("file name %q: invalid part segment %dof%d", name, part, total)
	}

	return &Descriptor{
		Family:   domain.FileFamily(m[1]),
		Date:     date,
		Category: category,
		Part:     part,
		Total:    total,
		Suffix:   m[6],
		Name:     name,
	}, nil
}

// Matches reports whether the descriptor belongs to the given category and,
// when family is non-empty, to the given file family.
func (d *Descriptor) Matches(category domain.Category, family domain.FileFamily) bool {
	if d.Category != category {
		return false
	}
	if family != "" && d.Family != family {
		return false
	}
	return true
}
