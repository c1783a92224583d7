package service

import (
	"context"
	"fmt"
	"sync"

	"dealscope/internal/domain"
	"dealscope/internal/engine"

	"go.uber.org/zap"
)

// DefaultHistory is the report-window size used when the configuration
// does not say otherwise.
const DefaultHistory = 100

// EvaluationService runs the reconciliation pipeline over collector
// snapshots and keeps a bounded in-memory window of recent reports. Reports
// are recomputable from their snapshots, so the window is a cache for the
// API, not a system of record.
type EvaluationService struct {
	evaluator *engine.Evaluator
	eventBus  *EventBus
	logger    *zap.Logger

	mu      sync.RWMutex
	reports map[string]domain.Report
	order   []string
	keep    int
}

// NewEvaluationService creates a new evaluation service keeping up to
// `keep` recent reports.
func NewEvaluationService(evaluator *engine.Evaluator, eventBus *EventBus, logger *zap.Logger, keep int) *EvaluationService {
	if keep <= 0 {
		keep = DefaultHistory
	}
	return &EvaluationService{
		evaluator: evaluator,
		eventBus:  eventBus,
		logger:    logger,
		reports:   make(map[string]domain.Report),
		keep:      keep,
	}
}

// Evaluate runs the full pipeline on one snapshot, retains the report and
// publishes the evaluation lifecycle events.
func (s *EvaluationService) Evaluate(ctx context.Context, snap domain.Snapshot) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	s.eventBus.Publish(Event{
		Type:    EventEvaluationStarted,
		Payload: snap.Completeness(),
	})

	report := s.evaluator.Evaluate(snap)

	for _, c := range report.Conflicts {
		s.eventBus.Publish(Event{
			Type: EventConflictDetected,
			Payload: map[string]string{
				"conflict_id": c.ID,
				"type":        string(c.Type),
				"severity":    string(c.Severity),
			},
		})
	}
	for _, res := range report.Resolutions {
		s.eventBus.Publish(Event{
			Type: EventConflictResolved,
			Payload: map[string]any{
				"conflict_id": res.ConflictID,
				"resolution":  string(res.Resolution),
				"confidence":  res.Confidence,
			},
		})
	}

	s.retain(report)

	s.eventBus.Publish(Event{
		Type:    EventEvaluationCompleted,
		Payload: report.Summarize(),
	})

	s.logger.Info("evaluation completed",
		zap.String("report_id", report.ID),
		zap.String("recommendation", string(report.Decision.Recommendation)),
		zap.Int("score", report.Decision.Score),
		zap.Int("coherence", report.CoherenceScore),
		zap.Int("conflicts", len(report.Conflicts)),
		zap.Bool("valid", report.Valid),
	)

	return report, nil
}

// GetReport retrieves a retained report by ID.
func (s *EvaluationService) GetReport(id string) (domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return domain.Report{}, fmt.Errorf("report %s not found", id)
	}
	return report, nil
}

// ListReports returns summaries of retained reports, newest first.
func (s *EvaluationService) ListReports() []domain.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]domain.Summary, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		if report, ok := s.reports[s.order[i]]; ok {
			summaries = append(summaries, report.Summarize())
		}
	}
	return summaries
}

// retain stores the report, evicting the oldest beyond the window.
func (s *EvaluationService) retain(report domain.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = report
	s.order = append(s.order, report.ID)
	for len(s.order) > s.keep {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.reports, oldest)
	}
}
