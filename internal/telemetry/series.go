// Package telemetry records the live cell count over time and publishes it
// to charting front ends.
package telemetry

import (
	"errors"
	"sync"
	"time"
)

const (
	// BucketSize is the width of one averaging bucket.
	BucketSize = 100 * time.Millisecond
	// Window is how much history the series keeps.
	Window = 10 * time.Second
	// BucketCount is the number of buckets covering Window.
	BucketCount = int(Window / BucketSize)
)

// ErrOutOfOrder is returned when a sample is older than the newest bucket.
var ErrOutOfOrder = errors.New("telemetry: samples must be chronological")

// Point is a single sample, At being the time since the run started.
type Point struct {
	At    time.Duration
	Value float64
}

// Bucket aggregates the samples falling into one BucketSize slot.
type Bucket struct {
	Start time.Duration
	Sum   float64
	Count int
}

// Avg returns the mean of the bucket's samples.
func (b Bucket) Avg() float64 {
	if b.Count == 0 {
		return 0
	}
	return b.Sum / float64(b.Count)
}

func bucketFor(p Point) Bucket {
	return Bucket{Start: p.At.Truncate(BucketSize), Sum: p.Value, Count: 1}
}

// Series is a bounded, bucketed time series. It is safe for one writer and
// concurrent readers.
type Series struct {
	mu      sync.RWMutex
	buckets []Bucket
}

// NewSeries returns an empty series.
func NewSeries() *Series {
	return &Series{buckets: make([]Bucket, 0, BucketCount+1)}
}

// Reset drops every bucket.
func (s *Series) Reset() {
	s.mu.Lock()
	s.buckets = s.buckets[:0]
	s.mu.Unlock()
}

// Record adds p to the newest bucket, or opens a new one when p falls past
// its end. Buckets older than Window are evicted.
func (s *Series) Record(p Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buckets) == 0 {
		s.buckets = append(s.buckets, bucketFor(p))
		return nil
	}
	last := &s.buckets[len(s.buckets)-1]
	if p.At < last.Start {
		return ErrOutOfOrder
	}
	if p.At-last.Start >= BucketSize {
		s.buckets = append(s.buckets, bucketFor(p))
	} else {
		last.Sum += p.Value
		last.Count++
	}
	if extra := len(s.buckets) - BucketCount; extra > 0 {
		s.buckets = append(s.buckets[:0], s.buckets[extra:]...)
	}
	return nil
}

// Len returns the number of buckets held.
func (s *Series) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buckets)
}

// Buckets returns a copy of the buckets, oldest first.
func (s *Series) Buckets() []Bucket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Bucket(nil), s.buckets...)
}

// Snapshot is the chartable view of a series.
type Snapshot struct {
	Averages []float64 `json:"averages"`
	Max      float64   `json:"max"`
	Latest   float64   `json:"latest"`
}

// Snapshot returns per-bucket averages and their maximum.
func (s *Series) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Averages: make([]float64, len(s.buckets))}
	for i, b := range s.buckets {
		avg := b.Avg()
		snap.Averages[i] = avg
		if avg > snap.Max {
			snap.Max = avg
		}
	}
	if n := len(snap.Averages); n > 0 {
		snap.Latest = snap.Averages[n-1]
	}
	return snap
}

// Recorder feeds a series from a frame loop using wall-clock time.
type Recorder struct {
	series *Series
	start  time.Time
	now    func() time.Time
}

// NewRecorder starts the clock for series.
func NewRecorder(series *Series) *Recorder {
	return &Recorder{series: series, start: time.Now(), now: time.Now}
}

// Restart clears the series and restarts the clock.
func (r *Recorder) Restart() {
	r.series.Reset()
	r.start = r.now()
}

// Observe records live at the current time. Its signature matches
// sim.Session.OnStep.
func (r *Recorder) Observe(_ int, live int) {
	_ = r.series.Record(Point{At: r.now().Sub(r.start), Value: float64(live)})
}
