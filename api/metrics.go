package api

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// nextActionMetrics accumulates timings for one next-actions request and
// emits them as a single structured log entry when the request finishes.
type nextActionMetrics struct {
	logger          *log.Logger
	start           time.Time
	fetchDuration   time.Duration
	rankDuration    time.Duration
	candidates      int
	actionsReturned int
	whyRequested    bool
	errorStage      string
}

func newNextActionMetrics(logger *log.Logger) *nextActionMetrics {
	return &nextActionMetrics{logger: logger, start: time.Now()}
}

func (m *nextActionMetrics) ObserveFetch(d time.Duration) {
	if d > 0 {
		m.fetchDuration = d
	}
}

func (m *nextActionMetrics) ObserveRank(d time.Duration) {
	if d > 0 {
		m.rankDuration = d
	}
}

func (m *nextActionMetrics) SetCandidates(n int) {
	if n < 0 {
		n = 0
	}
	m.candidates = n
}

func (m *nextActionMetrics) SetActionsReturned(n int) {
	if n < 0 {
		n = 0
	}
	m.actionsReturned = n
}

func (m *nextActionMetrics) SetWhyRequested(v bool) {
	m.whyRequested = v
}

func (m *nextActionMetrics) SetErrorStage(stage string) {
	if stage == "" {
		return
	}
	m.errorStage = stage
}

func (m *nextActionMetrics) Log(status int, err error) {
	if m == nil || m.logger == nil {
		return
	}

	fields := log.Fields{
		"route":            "/api/next-actions",
		"status":           status,
		"total_ms":         durationToMillis(time.Since(m.start)),
		"candidates":       m.candidates,
		"actions_returned": m.actionsReturned,
		"why_requested":    m.whyRequested,
	}

	if m.fetchDuration > 0 {
		fields["fetch_ms"] = durationToMillis(m.fetchDuration)
	}
	if m.rankDuration > 0 {
		fields["rank_ms"] = durationToMillis(m.rankDuration)
	}
	if m.errorStage != "" {
		fields["error_stage"] = m.errorStage
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	m.logger.WithFields(fields).Info("next_actions.request.metrics")
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
