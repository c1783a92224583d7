package codec

import (
	"fmt"
	"io"

	"dealscope/internal/domain"
)

// Importer parses a collector snapshot from a wire format.
type Importer interface {
	Parse(r io.Reader) (domain.Snapshot, error)
	Format() string
}

// Exporter writes an evaluation report to a wire format.
type Exporter interface {
	Export(report domain.Report, w io.Writer) error
	Format() string
}

// DecodeError pins a malformed payload to the bundle section that failed,
// so the caller can report which collector produced bad data.
type DecodeError struct {
	Section string
	Reason  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Section, e.Reason)
}
