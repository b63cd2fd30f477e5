package oracle

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CallEvent records metadata about a single oracle invocation.
type CallEvent struct {
	RequestID string
	Provider  Provider
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about oracle calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// LogObserver writes oracle call events through zerolog.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver creates an Observer that logs events via log.
func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ev := o.log.Debug()
	if !event.Success {
		ev = o.log.Warn().Str("error_code", event.ErrorCode)
	}
	ev.Str("request_id", event.RequestID).
		Str("provider", string(event.Provider)).
		Str("model", event.Model).
		Int64("latency_ms", event.LatencyMs).
		Bool("success", event.Success).
		Msg("oracle call")
}

// newRequestID returns a fresh ID for correlating one oracle call across
// log lines.
func newRequestID() string {
	return uuid.NewString()
}
