// Package bloom tracks identifiers that have already been issued using
// Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter records issued identifiers in a chain of Bloom filters.
//
// When the newest filter reaches its capacity, a filter with twice the
// capacity and half the false positive rate is appended. The combined
// false positive rate stays below the rate given to NewFilter no matter
// how many identifiers are recorded.
//
// It is safe for concurrent use.
type Filter struct {
	mu      sync.Mutex
	filters []*bloom.BloomFilter

	// Capacity, false positive rate and fill of the newest filter.
	capacity uint
	fpRate   float64
	added    uint
}

// NewFilter creates a new filter sized for n expected identifiers with the
// given overall false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	f := &Filter{}
	f.grow(max(n, 1), fpRate/2)
	return f
}

func (f *Filter) grow(n uint, fpRate float64) {
	f.filters = append(f.filters, bloom.NewWithEstimates(n, fpRate))
	f.capacity, f.fpRate, f.added = n, fpRate, 0
}

// Add records an identifier.
func (f *Filter) Add(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.test(id) {
		f.add(id)
	}
}

// TestAndAdd records the identifier and reports whether it might have
// been recorded before. False positives are possible; false negatives are
// not.
func (f *Filter) TestAndAdd(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.test(id) {
		return true
	}
	f.add(id)
	return false
}

func (f *Filter) test(id string) bool {
	for _, b := range f.filters {
		if b.TestString(id) {
			return true
		}
	}
	return false
}

func (f *Filter) add(id string) {
	f.filters[len(f.filters)-1].AddString(id)
	f.added++
	if f.added >= f.capacity {
		f.grow(f.capacity*2, f.fpRate/2)
	}
}
