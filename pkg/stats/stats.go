// Package stats derives the two summary views over a trial collection:
// the success rate against a threshold and the integer-bucket histogram.
package stats

import (
	"fmt"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// SuccessRate returns the percentage of entries in the collection that are
// greater than or equal to threshold. An empty collection is an invalid
// argument (the ratio is undefined).
func SuccessRate(c domain.Collection, threshold int) (float64, error) {
	if len(c) == 0 {
		return 0, fmt.Errorf("success rate over an empty collection: %w", domain.ErrInvalidArgument)
	}

	hits := 0
	for _, final := range c {
		if final >= threshold {
			hits++
		}
	}
	return float64(hits) / float64(len(c)) * 100, nil
}

// Histogram bins the collection into width-1 integer buckets. The table is
// dense over [min, max]: every integer between the observed minimum and
// maximum is present, including zero-count buckets, and counts sum to
// len(c). An empty collection yields an empty table.
func Histogram(c domain.Collection) domain.FrequencyTable {
	table := domain.FrequencyTable{}
	if len(c) == 0 {
		return table
	}

	min, max := c[0], c[0]
	for _, final := range c {
		if final < min {
			min = final
		}
		if final > max {
			max = final
		}
	}

	for b := min; b <= max; b++ {
		table[b] = 0
	}
	for _, final := range c {
		table[final]++
	}
	return table
}
