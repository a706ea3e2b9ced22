// Package probe measures how a Bloom filter's answers compare with an exact
// set holding the same keys.
package probe

import (
	"fmt"

	"github.com/huandu/skiplist"
)

// Filter is the part of a Bloom filter a probe exercises.
type Filter interface {
	Insert(key string)
	Contains(key string) bool
}

// Report tallies the answers a filter gave to a probe run.
type Report struct {
	Inserted       int `json:"inserted"`        // Distinct keys inserted.
	Probes         int `json:"probes"`          // Keys queried.
	TruePositives  int `json:"true_positives"`  // Inserted keys reported present.
	TrueNegatives  int `json:"true_negatives"`  // Absent keys reported absent.
	FalsePositives int `json:"false_positives"` // Absent keys reported present.
	FalseNegatives int `json:"false_negatives"` // Inserted keys reported absent. Always zero for a Bloom filter.
}

// ReferenceSet is an exact, ordered set of string keys.
type ReferenceSet struct {
	keys *skiplist.SkipList
}

// NewReferenceSet creates an empty reference set.
func NewReferenceSet() *ReferenceSet {
	return &ReferenceSet{keys: skiplist.New(skiplist.String)}
}

// Add inserts key into the set.
func (s *ReferenceSet) Add(key string) {
	s.keys.Set(key, struct{}{})
}

// Has reports whether key is in the set.
func (s *ReferenceSet) Has(key string) bool {
	return s.keys.Get(key) != nil
}

// Len returns the number of distinct keys in the set.
func (s *ReferenceSet) Len() int {
	return s.keys.Len()
}

// Keys returns the keys in sorted order.
func (s *ReferenceSet) Keys() []string {
	keys := make([]string, 0, s.keys.Len())
	for elem := s.keys.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Key().(string))
	}
	return keys
}

// Run inserts every key of inserted into filter and into an exact reference
// set, then queries filter with every key of probes and classifies each answer
// against the reference set.
func Run(filter Filter, inserted, probes []string) Report {
	exact := NewReferenceSet()
	for _, key := range inserted {
		filter.Insert(key)
		exact.Add(key)
	}

	report := Report{Inserted: exact.Len(), Probes: len(probes)}
	for _, key := range probes {
		present, member := filter.Contains(key), exact.Has(key)
		switch {
		case present && member:
			report.TruePositives++
		case present:
			report.FalsePositives++
		case member:
			report.FalseNegatives++
			log.Errorf("Filter lost inserted key %q", key)
		default:
			report.TrueNegatives++
		}
	}

	log.Debugf("Probe finished: %v", report)
	return report
}

// FalsePositiveRate returns the fraction of absent probe keys the filter
// reported as present.
func (r Report) FalsePositiveRate() float64 {
	negatives := r.TrueNegatives + r.FalsePositives
	if negatives == 0 {
		return 0
	}
	return float64(r.FalsePositives) / float64(negatives)
}

func (r Report) String() string {
	return fmt.Sprintf("inserted=%d probes=%d tp=%d tn=%d fp=%d fn=%d",
		r.Inserted, r.Probes, r.TruePositives, r.TrueNegatives,
		r.FalsePositives, r.FalseNegatives)
}
