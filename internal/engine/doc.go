// Package engine implements the reconciliation and decision-scoring core of
// Dealscope.
//
// Every component is a pure, synchronous function over an immutable
// domain.Snapshot: cross-validation detects disagreements between signal
// bundles, the conflict builder types and identifies them, the coherence
// scorer and arbitrator reduce them, the location and multi-dimensional
// scorers convert reconciled signals into calibrated 0-100 sub-scores, the
// risk categorizer derives the risk register, and the decision aggregator
// emits the final bounded recommendation.
//
// The numeric thresholds in this package are domain-tuned business
// calibration. They are deliberately hard-coded: moving them to
// configuration would let outcomes change silently.
//
// No component panics on missing or malformed input. Absent bundles mean
// "insufficient data for that check"; structural problems surface as error
// fields on typed results, and the final decision degrades toward the
// conservative side.
package engine
