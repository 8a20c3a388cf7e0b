package classification

import (
	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

// GroupByCategory partitions a worklist by inferred category. Every item
// lands in exactly one group, so the union of the groups is the worklist:
// the per-category file scans downstream cover the whole batch without
// overlap.
func GroupByCategory(items []domain.WorkItem) map[domain.Category][]domain.WorkItem {
	groups := make(map[domain.Category][]domain.WorkItem)
	for _, item := range items {
		category := ResolveCode(item.ClassificationCode)
		groups[category] = append(groups[category], item)
	}
	return groups
}

// Identifiers returns the identifier set of one worklist group, deduplicated
// in first-seen order for the batch matcher.
func Identifiers(items []domain.WorkItem) []string {
	seen := make(map[string]struct{}, len(items))
	var ids []string
	for _, item := range items {
		if _, ok := seen[item.Identifier]; ok {
			continue
		}
		seen[item.Identifier] = struct{}{}
		ids = append(ids, item.Identifier)
	}
	return ids
}
