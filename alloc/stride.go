package alloc

import "math/bits"

// DefaultAlignment is the baseline chunk alignment in bytes. It is
// cache-line scale: chunks never straddle a cache line boundary unless the
// payload itself is larger than one.
const DefaultAlignment = 64

// nextPow2 rounds n up to the next power of two using a single bit scan.
// n of 0 or 1 rounds to 1.
func nextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << (64 - bits.LeadingZeros64(n-1))
}

// computeStride derives the chunk stride for a payload: the smallest power
// of two that is >= payloadSize and >= baselineAlignment.
func computeStride(payloadSize, baselineAlignment int) int {
	p := nextPow2(uint64(payloadSize))
	if p < uint64(baselineAlignment) {
		return baselineAlignment
	}
	return int(p)
}

// isPow2 reports whether n is a positive power of two.
func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
