package domain

import "sort"

// Collection holds the final positions gathered across repeated trials,
// one entry per walk, in call order. Order is irrelevant for aggregation
// but preserved for reproducibility checks.
type Collection []int

// FrequencyTable maps a final-position bucket to the number of trials that
// ended there. Tables produced by stats.Histogram are dense: every integer
// between the observed minimum and maximum is present, zero counts included.
type FrequencyTable map[int]int

// Total returns the sum of all bucket counts.
func (f FrequencyTable) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Buckets returns the bucket keys in ascending order.
func (f FrequencyTable) Buckets() []int {
	buckets := make([]int, 0, len(f))
	for b := range f {
		buckets = append(buckets, b)
	}
	sort.Ints(buckets)
	return buckets
}

// Max returns the largest bucket count, or 0 for an empty table.
// Renderers use it to scale bars.
func (f FrequencyTable) Max() int {
	max := 0
	for _, count := range f {
		if count > max {
			max = count
		}
	}
	return max
}

// Summary is the reportable result of one experiment: the parameters it ran
// with and the two derived views over its Collection.
type Summary struct {
	Trials      int            `json:"trials"`
	WalkLength  int            `json:"walk_length"`
	Threshold   int            `json:"threshold"`
	SuccessRate float64        `json:"success_rate"` // percentage of finals >= Threshold
	Histogram   FrequencyTable `json:"histogram"`
	Seed        int64          `json:"seed,omitempty"`
}
