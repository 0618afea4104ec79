package driven

import "context"

// SequenceStore provides read-only access to raw base sequences,
// keyed by sequence record name.
type SequenceStore interface {
	// Bases returns the bases of the half-open window [start, end)
	// of the named sequence record. Returns domain.ErrNotFound when the
	// record is absent and domain.ErrInvalidInput when the window falls
	// outside the record.
	Bases(ctx context.Context, record string, start, end int64) (string, error)

	// Has reports whether the store holds the named sequence record.
	Has(record string) bool

	// Close releases the underlying file handles.
	Close() error
}
