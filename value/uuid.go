package value

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// UUID yields a fresh UUIDv4 per Next (§3). When constructed with a seed it
// draws from a deterministic PRNG-backed reader instead of the OS's
// cryptographically secure source, matching §6's "v4 from a cryptographically
// secure source when available, else PRNG-based."
type UUID struct {
	rng     *rand.Rand
	current string
}

// NewUUID constructs a UUID node using the OS's secure random source.
func NewUUID() *UUID {
	return &UUID{}
}

// NewSeededUUID constructs a UUID node whose output is reproducible given
// the same seed, for deterministic test/demo runs.
func NewSeededUUID(seed uint64) *UUID {
	return &UUID{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Current implements Value.
func (n *UUID) Current() any { return n.current }

// Next implements Value.
func (n *UUID) Next() (any, error) {
	var id uuid.UUID
	var err error
	if n.rng != nil {
		id, err = uuid.NewRandomFromReader(rand.NewChaCha8(n.seedArray()))
	} else {
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return nil, err
	}
	n.current = id.String()
	return n.current, nil
}

// seedArray derives a fresh 32-byte seed from the node's PRNG for each
// NewChaCha8 reader construction, so repeated Next calls still advance.
func (n *UUID) seedArray() [32]byte {
	var seed [32]byte
	for i := 0; i < len(seed); i += 8 {
		v := n.rng.Uint64()
		for j := 0; j < 8; j++ {
			seed[i+j] = byte(v >> (8 * j))
		}
	}
	return seed
}

// Reset implements Value.
func (n *UUID) Reset() {
	n.current = ""
}

// value implements Value.
func (*UUID) value() {}
