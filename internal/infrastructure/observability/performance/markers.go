// Package performance provides lightweight operation timing for request
// handlers and store lifecycle steps.
package performance

import "time"

// Marker represents a single performance measurement for an operation
type Marker struct {
	Operation string         `json:"operation"`
	StartTime time.Time      `json:"startTime"`
	Duration  time.Duration  `json:"duration"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Completed bool           `json:"completed"`

	tracker *Tracker
}

// Complete records the marker with its tracker. Calling it twice is a no-op.
func (m *Marker) Complete() {
	if m == nil || m.Completed {
		return
	}
	m.Duration = time.Since(m.StartTime)
	m.Completed = true
	if m.tracker != nil {
		m.tracker.record(m)
	}
}

func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// SetError marks the operation as failed.
func (m *Marker) SetError(err error) {
	if err != nil {
		m.Error = err.Error()
		m.Success = false
	}
}

func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}

// OperationStats aggregates completed markers of one operation.
type OperationStats struct {
	Operation string        `json:"operation"`
	Count     int           `json:"count"`
	Failures  int           `json:"failures"`
	Total     time.Duration `json:"total"`
	Max       time.Duration `json:"max"`
	Average   time.Duration `json:"average"`
}
