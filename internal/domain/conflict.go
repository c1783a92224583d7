package domain

import "time"

// Severity grades how damaging a conflict is to the evaluation.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Weight returns the calibrated point cost of a conflict of this severity.
// The same weights drive both the coherence penalty and the risk score.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 25
	case SeverityHigh:
		return 15
	case SeverityMedium:
		return 8
	case SeverityLow:
		return 3
	}
	return 0
}

// ConflictType enumerates the six known disagreement patterns between
// signal bundles.
type ConflictType string

const (
	// ConflictPopulationPOI: trade-area population and nearby POI counts
	// tell opposite stories about how busy the zone is.
	ConflictPopulationPOI ConflictType = "POPULATION_POI_MISMATCH"
	// ConflictCSPPricing: the socio-professional profile contradicts the
	// listing's price level.
	ConflictCSPPricing ConflictType = "CSP_PRICING_MISMATCH"
	// ConflictRatingPhotos: the map rating contradicts the photographed
	// condition of the premises.
	ConflictRatingPhotos ConflictType = "RATING_PHOTOS_MISMATCH"
	// ConflictGeographic: two providers disagree on where the business is.
	ConflictGeographic ConflictType = "GEOGRAPHIC_MISMATCH"
	// ConflictScore: a strong demographic score coexists with a heavy
	// renovation budget.
	ConflictScore ConflictType = "SCORE_MISMATCH"
	// ConflictDataInconsistency: a collector's output is internally
	// contradictory (e.g. "not found" alongside valid coordinates).
	ConflictDataInconsistency ConflictType = "DATA_INCONSISTENCY"
)

// Issue is an ephemeral mismatch emitted by cross-validation, consumed
// immediately by the conflict builder.
type Issue struct {
	Type        ConflictType `json:"type"`
	Severity    Severity     `json:"severity"`
	Description string       `json:"description"`
	// Sources records the raw values each side contributed, keyed by
	// collector name, for forensic traceability.
	Sources map[string]any `json:"sources"`
}

// Conflict is a typed, identified disagreement between two signal bundles.
// The ID is unique within a run. Resolved starts false and is set true only
// by arbitration.
type Conflict struct {
	ID          string         `json:"id"`
	Type        ConflictType   `json:"type"`
	Severity    Severity       `json:"severity"`
	Description string         `json:"description"`
	Sources     map[string]any `json:"sources"`
	DetectedAt  time.Time      `json:"detected_at"`
	Resolved    bool           `json:"resolved"`
}

// IsBlocking reports whether the conflict alone should block a GO.
func (c Conflict) IsBlocking() bool {
	return c.Severity == SeverityCritical
}

// ResolutionKind is the terminal state arbitration assigns to a conflict.
type ResolutionKind string

const (
	// ResolutionConfirmed: one source was authoritative; its value stands.
	ResolutionConfirmed ResolutionKind = "CONFIRMED"
	// ResolutionRejected: the less-trusted source's value is discarded.
	ResolutionRejected ResolutionKind = "REJECTED"
	// ResolutionHybrid: both signals are partially valid and coexist.
	ResolutionHybrid ResolutionKind = "HYBRID"
	// ResolutionNeedsRevalidation: the conflict cannot be settled from the
	// data at hand; a collector must re-run.
	ResolutionNeedsRevalidation ResolutionKind = "NEEDS_REVALIDATION"
)

// Settles reports whether this kind leaves the conflict resolved. A
// revalidation verdict keeps the conflict open.
func (k ResolutionKind) Settles() bool {
	return k != ResolutionNeedsRevalidation
}

// Confidence bands used to sanity-check arbitration output.
const (
	ConfidenceCertain  = 0.90
	ConfidenceProbable = 0.70
	ConfidenceVerify   = 0.50
)

// ConfidenceBand labels a confidence value per the calibrated bands.
func ConfidenceBand(c float64) string {
	switch {
	case c >= ConfidenceCertain:
		return "certain"
	case c >= ConfidenceProbable:
		return "probable"
	case c >= ConfidenceVerify:
		return "verify_recommended"
	default:
		return "needs_revalidation"
	}
}

// Resolution records how arbitration settled one conflict.
type Resolution struct {
	ConflictID  string         `json:"conflict_id"`
	Resolution  ResolutionKind `json:"resolution"`
	Confidence  float64        `json:"confidence"`
	Explanation string         `json:"explanation"`
	Action      string         `json:"action"`
	UpdatedData map[string]any `json:"updated_data,omitempty"`
	// SourcePriority lists sources from most to least trusted for this
	// conflict type.
	SourcePriority []string  `json:"source_priority,omitempty"`
	ResolvedAt     time.Time `json:"resolved_at"`
}

// GoNoGoImpact is the advisory verdict arbitration hands to the decision
// aggregator. It is an input to the final decision, never the decision.
type GoNoGoImpact struct {
	BlockingIssuesResolved  bool           `json:"blocking_issues_resolved"`
	RemainingCriticalIssues int            `json:"remaining_critical_issues"`
	Recommendation          Recommendation `json:"recommendation"`
}

// ArbitrationOutcome aggregates a full arbitration pass.
type ArbitrationOutcome struct {
	// Conflicts is the post-arbitration conflict set, with Resolved flags
	// transitioned for settled conflicts.
	Conflicts   []Conflict             `json:"conflicts"`
	Resolutions []Resolution           `json:"resolutions"`
	Counts      map[ResolutionKind]int `json:"counts"`
	// AverageConfidence is the mean resolution confidence; 1.0 when nothing
	// was contested.
	AverageConfidence float64      `json:"average_confidence"`
	Impact            GoNoGoImpact `json:"go_no_go_impact"`
}

// UnresolvedCritical counts CRITICAL conflicts still open after arbitration.
func (o ArbitrationOutcome) UnresolvedCritical() int {
	n := 0
	for _, c := range o.Conflicts {
		if c.Severity == SeverityCritical && !c.Resolved {
			n++
		}
	}
	return n
}
