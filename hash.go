package gcm

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultSeed is the fixed seed mixed into every hash computed by
// XXHash64. Build and Query must use the same seed; Build stores its
// hasher on the returned Map precisely so the two can never diverge.
const DefaultSeed uint64 = 1337

// Hasher reduces an element's bytes to a 64-bit hash under a caller-fixed
// seed. It is a capability parameter of the map rather than a package
// global, so an alternative fast, non-cryptographic 64-bit hash can be
// substituted uniformly at build and query time.
type Hasher interface {
	Hash(seed uint64, data []byte) uint64
}

// XXHash64 is the default Hasher, wrapping xxHash64 behind a pool of
// reusable digests.
type XXHash64 struct{}

var digestPool = sync.Pool{
	New: func() any { return xxhash.New() },
}

// Hash mixes seed into the digest ahead of data, so the same bytes hashed
// under different seeds give unrelated sums, then returns the 64-bit sum.
func (XXHash64) Hash(seed uint64, data []byte) uint64 {
	d := digestPool.Get().(*xxhash.Digest)
	d.Reset()

	var seedBuf [8]byte
	binary.LittleEndian.PutUint64(seedBuf[:], seed)
	d.Write(seedBuf[:])
	d.Write(data)

	sum := d.Sum64()
	digestPool.Put(d)
	return sum
}
