// Package analytics derives chart-ready aggregates from a record snapshot:
// categorical and normalized distributions, fixed age brackets, the
// registrations-per-month trend, and grouped sums. Every aggregate is a pure
// pass over the snapshot and is re-runnable on arbitrary subsets.
package analytics

import "sort"

// Bucket is one named aggregate count or sum. A slice of buckets forms a
// chart-ready series; ordering is aggregate-specific.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// counter accumulates bucket values while remembering first-seen order, so an
// aggregate can choose between insertion order and sorted-by-value output.
type counter struct {
	order  []string
	values map[string]int
}

func newCounter() *counter {
	return &counter{values: make(map[string]int)}
}

func (c *counter) add(name string, delta int) {
	if _, seen := c.values[name]; !seen {
		c.order = append(c.order, name)
	}
	c.values[name] += delta
}

// insertionOrder emits buckets in first-seen order.
func (c *counter) insertionOrder() []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Bucket{Name: name, Value: c.values[name]})
	}
	return out
}

// byValueDesc emits buckets sorted by descending value; ties keep first-seen
// order so repeated runs over the same snapshot are identical.
func (c *counter) byValueDesc() []Bucket {
	out := c.insertionOrder()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// TopN truncates a sorted series to its first n buckets. Truncation happens
// after full aggregation, never before.
func TopN(buckets []Bucket, n int) []Bucket {
	if len(buckets) <= n {
		return buckets
	}
	return buckets[:n]
}
