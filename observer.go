package rangecache

import "time"

// Observer receives cache events. Implement it to export metrics; see
// pkg/metrics for a Prometheus implementation.
//
// Methods are called while the cache lock is held and must not call back
// into the cache.
type Observer interface {
	// RecordQuery is called after each successful RangeSum.
	RecordQuery(hit bool, duration time.Duration)

	// RecordUpdate is called after each successful Update with the number
	// of cached ranges it invalidated.
	RecordUpdate(invalidated int, duration time.Duration)

	// RecordEviction is called when a range is dropped to respect capacity.
	RecordEviction()
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits          uint64 `json:"hits" yaml:"hits"`
	Misses        uint64 `json:"misses" yaml:"misses"`
	Evictions     uint64 `json:"evictions" yaml:"evictions"`
	Invalidations uint64 `json:"invalidations" yaml:"invalidations"`
	Updates       uint64 `json:"updates" yaml:"updates"`
	Len           int    `json:"len" yaml:"len"`
	Cap           int    `json:"cap" yaml:"cap"`
}

// HitRatio returns hits / (hits + misses), or 0 before the first query.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
