package metrics

import "time"

// Recorder defines observability hooks for wiki preparation runs. Implementations
// may forward to Prometheus, OpenTelemetry, etc. The NoopRecorder is the default
// so components never need nil checks.
type Recorder interface {
	ObservePrepareDuration(d time.Duration)
	IncRunOutcome(outcome string) // outcome: success|failed|canceled
	AddPages(n int)
	AddImages(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePrepareDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(string)                 {}
func (NoopRecorder) AddPages(int)                         {}
func (NoopRecorder) AddImages(int)                        {}
