package gcm

// Map is an immutable Golomb-coded map. It is returned by Build and is
// safe for any number of concurrent Query calls; nothing in this package
// ever mutates a Map after construction.
type Map struct {
	vector     []uint64
	vectorSize uint64 // bits, always a multiple of 64

	remainderSize uint8  // r
	errorRate     uint64 // p, a power of two
	universe      uint64 // U = elementCount * errorRate

	elementCount   uint32
	elementDivisor uint64 // D

	elementTableSize  uint32
	elementTable      []int64  // bit offset of bin's first codeword, or -1 if empty
	elementTableCount []uint32 // dense index of bin's first element

	hasher Hasher
	seed   uint64
}

// N reports the number of elements the map was built from.
func (m *Map) N() uint32 { return m.elementCount }

// ErrorRate reports the effective (power-of-two-rounded) false-positive
// divisor p.
func (m *Map) ErrorRate() uint64 { return m.errorRate }

// RemainderSize reports the Golomb remainder width r = log2(ErrorRate()).
func (m *Map) RemainderSize() uint8 { return m.remainderSize }

// TableSize reports the number of lookup bins T.
func (m *Map) TableSize() uint32 { return m.elementTableSize }

// VectorSizeBits reports the size of the packed codeword stream in bits.
func (m *Map) VectorSizeBits() uint64 { return m.vectorSize }

// Query reports whether element was present at build time and, if so, its
// dense index in [0, N()). The returned index is meaningful only when
// found is true. Query never mutates m and is safe to call concurrently
// with other Query calls.
func (m *Map) Query(element []byte) (found bool, index uint32) {
	hash := m.hasher.Hash(m.seed, element) % m.universe
	bin := hash / m.elementDivisor

	binOffset := m.elementTable[bin]
	if binOffset < 0 {
		return false, 0
	}

	offset := uint64(binOffset)
	acc := bin * m.elementDivisor
	idx := m.elementTableCount[bin]

	for offset < m.vectorSize {
		value, bitsRead := readGolomb(m.vector, offset, m.errorRate, m.remainderSize)
		offset += bitsRead
		acc += value

		if acc == hash {
			return true, idx
		}
		if acc > hash || idx >= m.elementCount-1 {
			return false, 0
		}
		idx++
	}
	return false, 0
}
