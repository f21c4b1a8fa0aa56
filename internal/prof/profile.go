// Package prof collects per-attempt timing for the extractor's outer
// retry loop, so a benchmark harness can report where time goes across
// a sweep without threading a logger through every call.
package prof

import (
	"sync"
	"time"
)

// Entry is one recorded attempt: which outer-loop stage it was, and
// how long it took.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track records the elapsed time since start under name. Typical
// callers defer prof.Track(time.Now(), "buildsystem") around a stage
// of a single extractor attempt.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns every entry recorded so far and clears the
// log, so successive benchmark runs don't accumulate each other's data.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// TotalByLabel sums durations per label, for a compact summary line.
func TotalByLabel(entries []Entry) map[string]time.Duration {
	out := make(map[string]time.Duration)
	for _, e := range entries {
		out[e.Label] += e.Dur
	}
	return out
}
