package analytics

import "github.com/floodstat/floodstat/internal/domain"

// group is one bucket of records sharing a key.
type group[K comparable] struct {
	key     K
	records []domain.ProjectRecord
}

// groupBy buckets records by key, preserving first-seen key order so the
// output never depends on map iteration.
func groupBy[K comparable](records []domain.ProjectRecord, key func(domain.ProjectRecord) K) []group[K] {
	index := make(map[K]int)
	var groups []group[K]
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group[K]{key: k})
		}
		groups[i].records = append(groups[i].records, r)
	}
	return groups
}
