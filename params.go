package gcm

import "math/bits"

// plan holds every derived quantity the builder and the bit-budget dry run
// need, computed once from the caller's N, requested error rate, and table
// size.
type plan struct {
	errorRate      uint64 // p, rounded up to the next power of two
	remainderSize  uint8  // r = log2(p)
	universe       uint64 // U = N * p
	elementDivisor uint64 // D = ceil(U / T)
	tableSize      uint32 // T
}

// nextPowerOfTwo rounds v up to the next power of two. v must be >= 1.
func nextPowerOfTwo(v uint64) uint64 {
	if v&(v-1) == 0 {
		return v
	}
	return 1 << bits.Len64(v)
}

// computePlan validates N, the requested error rate, and the table size,
// and derives p, r, U and D. The bit budget is not computed here; the
// builder sums it in planRecords. It mirrors gc_map.c's gc_map_new
// validation block and rounding rule.
func computePlan(elementCount uint32, requestedErrorRate uint64, tableSize uint32) (plan, error) {
	if elementCount == 0 {
		return plan{}, wrapBadArgs("element count must be non-zero")
	}
	if tableSize == 0 {
		return plan{}, wrapBadArgs("table size must be non-zero")
	}
	// gc_map.c rejects table_size > element_count - 1, i.e. accepts
	// tableSize up to elementCount-1; equivalently tableSize >= elementCount
	// is rejected. See DESIGN.md Open Question 2.
	if uint64(tableSize) >= uint64(elementCount) {
		return plan{}, wrapBadArgs("table size must be less than element count")
	}
	if requestedErrorRate < 2 {
		return plan{}, wrapBadArgs("error rate must be at least 2")
	}
	if bits.Len64(requestedErrorRate) > 63 {
		return plan{}, wrapBadArgs("error rate exceeds 63 bits")
	}

	errorRate := nextPowerOfTwo(requestedErrorRate)

	// N * errorRate must not overflow uint64, and its bit length must fit
	// in 64 bits (always true once it doesn't overflow, but kept explicit
	// to mirror spec.md's invariant 1 literally).
	n := uint64(elementCount)
	if errorRate != 0 && n > (^uint64(0))/errorRate {
		return plan{}, wrapBadArgs("element count * error rate overflows 64 bits")
	}
	universe := n * errorRate
	if bits.Len64(universe) > 64 {
		return plan{}, wrapBadArgs("element count * error rate requires more than 64 bits")
	}

	remainderSize := uint8(bits.Len64(errorRate) - 1)

	t := uint64(tableSize)
	elementDivisor := (universe + t - 1) / t

	return plan{
		errorRate:      errorRate,
		remainderSize:  remainderSize,
		universe:       universe,
		elementDivisor: elementDivisor,
		tableSize:      tableSize,
	}, nil
}
