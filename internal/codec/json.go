package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"dealscope/internal/domain"
)

// JSONCodec handles JSON snapshot import and report export.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// rawSnapshot defers per-bundle decoding so one malformed bundle is
// reported by collector name instead of failing the payload opaquely.
type rawSnapshot struct {
	Demographic json.RawMessage `json:"demographic"`
	Places      json.RawMessage `json:"places"`
	Photo       json.RawMessage `json:"photo"`
	Competitor  json.RawMessage `json:"competitor"`
	Preparation json.RawMessage `json:"preparation"`
}

// Parse decodes a five-bundle snapshot. Collectors occasionally hand a
// bundle over as an embedded JSON string rather than an object; both forms
// decode. Absent or null bundles stay nil. A malformed bundle is dropped
// rather than failing the snapshot: the section stays nil and the failure
// is recorded in Snapshot.DecodeFailures, so evaluation degrades on the
// surviving bundles. Only an unparsable envelope is a hard error.
func (c *JSONCodec) Parse(r io.Reader) (domain.Snapshot, error) {
	var raw rawSnapshot
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return domain.Snapshot{}, &DecodeError{Section: "snapshot", Reason: err.Error()}
	}

	var snap domain.Snapshot
	sections := []struct {
		name  string
		raw   json.RawMessage
		out   any
		clear func()
	}{
		{domain.AgentDemographic, raw.Demographic, &snap.Demographic, func() { snap.Demographic = nil }},
		{domain.AgentPlaces, raw.Places, &snap.Places, func() { snap.Places = nil }},
		{domain.AgentPhoto, raw.Photo, &snap.Photo, func() { snap.Photo = nil }},
		{domain.AgentCompetitor, raw.Competitor, &snap.Competitor, func() { snap.Competitor = nil }},
		{domain.AgentPreparation, raw.Preparation, &snap.Preparation, func() { snap.Preparation = nil }},
	}
	for _, s := range sections {
		if err := decodeSection(s.raw, s.name, s.out); err != nil {
			// Unmarshal may have allocated a partially filled bundle.
			s.clear()
			snap.DecodeFailures = append(snap.DecodeFailures, err.Error())
		}
	}
	return snap, nil
}

// decodeSection decodes one bundle into out, unwrapping an embedded JSON
// string first when needed.
func decodeSection(raw json.RawMessage, section string, out any) error {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var embedded string
		if err := json.Unmarshal(data, &embedded); err != nil {
			return &DecodeError{Section: section, Reason: err.Error()}
		}
		data = []byte(embedded)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Section: section, Reason: err.Error()}
	}
	return nil
}

// DecodeScoreInput decodes an externally-supplied score breakdown, for
// callers bringing their own scores to the risk categorizer.
func DecodeScoreInput(r io.Reader) (domain.ScoreInput, error) {
	var in domain.ScoreInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return domain.ScoreInput{}, &DecodeError{Section: "scores", Reason: err.Error()}
	}
	return in, nil
}

// Export exports an evaluation report to JSON
func (c *JSONCodec) Export(report domain.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}
