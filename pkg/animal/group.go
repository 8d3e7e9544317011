package animal

import "sort"

// UnknownKey is the bucket records land in when the grouping attribute is
// missing or empty.
const UnknownKey = "Unknown"

// Buckets is an ordered partition of records keyed by a grouping attribute.
// Bucket order follows first encounter; records keep their relative input
// order within each bucket.
type Buckets struct {
	keys    []string
	records map[string][]Record
}

// GroupBy partitions records by the value of attribute, optionally narrowed
// by subAttribute (meaning "look up attribute, then subAttribute within it").
// Records without a usable value land in the UnknownKey bucket. No record is
// dropped and none appears in more than one bucket; empty input yields empty
// buckets.
func GroupBy(records []Record, attribute string, subAttribute ...string) *Buckets {
	buckets := &Buckets{records: make(map[string][]Record, len(records))}

	path := make([]string, 0, 1+len(subAttribute))
	path = append(path, attribute)
	for _, sub := range subAttribute {
		if sub != "" {
			path = append(path, sub)
		}
	}

	for _, record := range records {
		key := record.StringOr(UnknownKey, path...)
		if _, seen := buckets.records[key]; !seen {
			buckets.keys = append(buckets.keys, key)
		}
		buckets.records[key] = append(buckets.records[key], record)
	}
	return buckets
}

// Len returns the number of buckets.
func (b *Buckets) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Keys returns bucket keys in first-encounter order.
func (b *Buckets) Keys() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// SortedKeys returns bucket keys sorted lexicographically ascending, the
// order the selection flow presents them in.
func (b *Buckets) SortedKeys() []string {
	out := b.Keys()
	sort.Strings(out)
	return out
}

// Get returns the records bucketed under key, preserving input order. The
// second return reports whether the bucket exists.
func (b *Buckets) Get(key string) ([]Record, bool) {
	if b == nil {
		return nil, false
	}
	records, ok := b.records[key]
	return records, ok
}
