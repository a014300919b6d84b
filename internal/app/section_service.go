package app

import (
	"context"
	"sort"
)

// SectionCounts reads per-section publish totals, maintained out of
// band by the section counter worker.
type SectionCounts interface {
	All(ctx context.Context) (map[string]int64, error)
}

type SectionCount struct {
	Section string `json:"section"`
	Count   int64  `json:"count"`
}

type SectionService struct {
	counts SectionCounts
}

func NewSectionService(counts SectionCounts) *SectionService {
	return &SectionService{counts: counts}
}

// Stats returns sections ordered by publish count, busiest first, ties
// broken by name.
func (s *SectionService) Stats(ctx context.Context) ([]SectionCount, error) {
	counts, err := s.counts.All(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]SectionCount, 0, len(counts))
	for section, count := range counts {
		stats = append(stats, SectionCount{Section: section, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Section < stats[j].Section
	})
	return stats, nil
}
