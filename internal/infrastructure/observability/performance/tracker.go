package performance

import (
	"sort"
	"sync"
	"time"
)

// Tracker aggregates markers per operation and keeps the most recent ones.
type Tracker struct {
	mu        sync.RWMutex
	stats     map[string]*OperationStats
	recent    []*Marker
	maxRecent int
	started   time.Time
}

func NewTracker(maxRecent int) *Tracker {
	if maxRecent <= 0 {
		maxRecent = 100
	}
	return &Tracker{
		stats:     make(map[string]*OperationStats),
		recent:    make([]*Marker, 0, maxRecent),
		maxRecent: maxRecent,
		started:   time.Now(),
	}
}

// StartOperation begins timing an operation; call Complete on the result.
func (t *Tracker) StartOperation(operation string) *Marker {
	return &Marker{
		Operation: operation,
		StartTime: time.Now(),
		tracker:   t,
	}
}

func (t *Tracker) record(m *Marker) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.stats[m.Operation]
	if !ok {
		s = &OperationStats{Operation: m.Operation}
		t.stats[m.Operation] = s
	}
	s.Count++
	if !m.Success {
		s.Failures++
	}
	s.Total += m.Duration
	if m.Duration > s.Max {
		s.Max = m.Duration
	}
	s.Average = s.Total / time.Duration(s.Count)

	if len(t.recent) == t.maxRecent {
		copy(t.recent, t.recent[1:])
		t.recent = t.recent[:len(t.recent)-1]
	}
	t.recent = append(t.recent, m)
}

// Stats returns per-operation aggregates sorted by operation name.
func (t *Tracker) Stats() []OperationStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]OperationStats, 0, len(t.stats))
	for _, s := range t.stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}

// Recent returns copies of the latest completed markers, oldest first.
func (t *Tracker) Recent() []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Marker, len(t.recent))
	for i, m := range t.recent {
		out[i] = *m
		out[i].tracker = nil
	}
	return out
}

func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}
