package services

import (
	"sync"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
)

// FacetStore derives the distinct filter facet values (ministry names,
// district names) from the latest analytics load. Each load replaces
// the prior facets entirely; nothing accumulates across loads. The
// store only collects values for the filter controls - it never
// filters data itself.
type FacetStore struct {
	mu         sync.RWMutex
	ministries []string
	districts  []string
}

// NewFacetStore creates an empty facet store.
func NewFacetStore() *FacetStore {
	return &FacetStore{}
}

// ReplaceMinistries rebuilds the ministry facet from the performance
// collection.
func (s *FacetStore) ReplaceMinistries(rows []domain.MinistryPerformanceRow) {
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i] = row.Ministry
	}
	s.mu.Lock()
	s.ministries = distinct(values)
	s.mu.Unlock()
}

// ReplaceDistricts rebuilds the district facet from the full,
// untruncated district collection.
func (s *FacetStore) ReplaceDistricts(rows []domain.DistrictMetric) {
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i] = row.District
	}
	s.mu.Lock()
	s.districts = distinct(values)
	s.mu.Unlock()
}

// Ministries returns the current ministry facet values.
func (s *FacetStore) Ministries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.ministries...)
}

// Districts returns the current district facet values.
func (s *FacetStore) Districts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.districts...)
}

// distinct keeps the first occurrence of each value, preserving the
// source order. No sorting: facet order follows the backend ranking.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
