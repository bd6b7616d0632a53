package booking

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues booking identifiers of the form "BKG<seq>-<rand>",
// e.g. "BKG000017-4F2A9C1B".
//
// Uniqueness contract: the sequence number is taken from an atomic
// counter, so two identifiers issued by the same generator can never
// collide within a running process regardless of how the random suffix
// falls. The suffix (32 bits of a UUIDv4, which reads crypto/rand)
// exists so identifiers are not guessable or enumerable from a single
// confirmation.
type IDGenerator struct {
	seq atomic.Uint64
}

// NewIDGenerator returns a generator starting at sequence 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next issues the next booking identifier. Safe for concurrent use.
func (g *IDGenerator) Next() string {
	n := g.seq.Add(1)
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("BKG%06d-%s", n, suffix)
}
