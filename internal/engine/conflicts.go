package engine

import (
	"time"

	"dealscope/internal/domain"

	"github.com/google/uuid"
)

// ConflictBuilder converts ephemeral issues into typed conflict records.
// The ID generator and clock are injectable so tests (and replayed runs)
// stay deterministic; production uses random UUIDs and wall-clock time.
type ConflictBuilder struct {
	NewID func() string
	Now   func() time.Time
}

// NewConflictBuilder returns a builder with production defaults.
func NewConflictBuilder() *ConflictBuilder {
	return &ConflictBuilder{
		NewID: uuid.NewString,
		Now:   time.Now,
	}
}

// Build assigns each issue a fresh unique id and a detection timestamp,
// preserving its sources map verbatim. Severities are carried over, never
// re-derived.
func (b *ConflictBuilder) Build(issues []domain.Issue) []domain.Conflict {
	if len(issues) == 0 {
		return nil
	}

	now := b.Now().UTC()
	conflicts := make([]domain.Conflict, 0, len(issues))
	for _, issue := range issues {
		conflicts = append(conflicts, domain.Conflict{
			ID:          b.NewID(),
			Type:        issue.Type,
			Severity:    issue.Severity,
			Description: issue.Description,
			Sources:     issue.Sources,
			DetectedAt:  now,
			Resolved:    false,
		})
	}
	return conflicts
}
