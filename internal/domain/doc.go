// Package domain defines the core domain types for the Dealscope acquisition
// evaluation engine.
//
// This package contains the entities and value objects the engine reasons
// about: the five immutable signal bundles gathered by upstream collectors,
// the conflict taxonomy produced when those bundles disagree, the score and
// risk types derived from reconciled signals, and the final decision object.
//
// # Signal Bundles
//
// A Snapshot groups the five bundles produced by independent collectors:
// DemographicReport (trade-area population, socio-professional profile),
// PlacesReport (map listing: rating, reviews, price level, coordinates),
// PhotoAssessment (physical condition and renovation budget estimated from
// photos), CompetitorReport (nearby points of interest and direct
// competitors), and PreparationReport (geocoded coordinates of the target).
// Any bundle may be nil; a missing bundle means "insufficient data", never
// an error.
//
// # Conflict Taxonomy
//
// Because collectors are imperfect, bundles frequently disagree. An Issue is
// an ephemeral pairwise mismatch; a Conflict is the typed, identified record
// built from it. Each Conflict carries one of six enumerated types and a
// severity (LOW/MEDIUM/HIGH/CRITICAL). A Resolution records how arbitration
// settled a conflict, with a confidence in [0,1].
//
// # Scores, Risks, Decision
//
// ScoreBreakdown holds the four calibrated sub-scores (location, market,
// operational, financial) plus the weighted overall, all clamped to [0,100].
// Risk entries form the derived risk register. Decision is the final bounded
// recommendation (GO, NO-GO, GO_WITH_RESERVES) with its adjustment trail.
//
// # Design Principles
//
// - Immutable value objects; only the Resolved flag on Conflict transitions
// - No I/O or infrastructure concerns
// - Thresholds are domain-calibrated constants, not configuration
package domain
