package agenda

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out identifiers for new records.
type IDSource interface {
	NewID() string
}

// UUIDSource generates UUIDv7 identifiers. They are unique and sort in
// creation order within a process, so two records created in the same
// millisecond never collide.
type UUIDSource struct{}

// NewID returns a fresh identifier.
func (UUIDSource) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequenceSource is a deterministic IDSource for seeded sample data and tests.
type SequenceSource struct {
	Prefix string
	next   atomic.Uint64
}

// NewID returns Prefix followed by an increasing counter starting at 1.
func (s *SequenceSource) NewID() string {
	return s.Prefix + strconv.FormatUint(s.next.Add(1), 10)
}
