package placement

import "github.com/banshee-data/coverage.plan/internal/monitoring"

// Observer receives progress notifications from the selector and the local
// search refiner. Algorithms never log directly; callers that want
// narration plug in an observer, tests plug in NopObserver or a recorder.
type Observer interface {
	// StrategyEvaluated fires after a strategy's placement has been scored.
	StrategyEvaluated(name string, cov CoverageResult)
	// StrategyFailed fires when a strategy returns an error and is excluded
	// from comparison.
	StrategyFailed(name string, err error)
	// ImprovementAccepted fires when local search accepts a relocation.
	ImprovementAccepted(pass, unitID int, cov CoverageResult)
}

// NopObserver discards all notifications.
type NopObserver struct{}

func (NopObserver) StrategyEvaluated(string, CoverageResult) {}
func (NopObserver) StrategyFailed(string, error) {}
func (NopObserver) ImprovementAccepted(int, int, CoverageResult) {}

// LogObserver narrates progress through the monitoring package logger.
type LogObserver struct{}

func (LogObserver) StrategyEvaluated(name string, cov CoverageResult) {
	monitoring.Logf("placement: %s scored %.2f%% (%d/%d covered)", name, cov.Percent, cov.Covered, cov.Total)
}

func (LogObserver) StrategyFailed(name string, err error) {
	monitoring.Logf("placement: %s failed: %v", name, err)
}

func (LogObserver) ImprovementAccepted(pass, unitID int, cov CoverageResult) {
	monitoring.Logf("placement: local search pass %d moved unit %d, now %.2f%%", pass, unitID, cov.Percent)
}

var (
	_ Observer = NopObserver{}
	_ Observer = LogObserver{}
)
