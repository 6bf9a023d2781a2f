package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NextPow2(t *testing.T) {
	cases := []struct {
		in   uint64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{63, 64},
		{64, 64},
		{65, 128},
		{100, 128},
		{128, 128},
		{1<<20 + 1, 1 << 21},
		{1 << 40, 1 << 40},
	}
	for _, c := range cases {
		require.Equal(t, c.want, nextPow2(c.in), "nextPow2(%d)", c.in)
	}
}

func Test_ComputeStride_Properties(t *testing.T) {
	alignments := []int{8, 16, 64, 128, 4096}
	sizes := []int{1, 2, 7, 8, 15, 16, 17, 63, 64, 65, 100, 500, 4096, 5000}

	for _, a := range alignments {
		for _, sz := range sizes {
			stride := computeStride(sz, a)

			require.True(t, isPow2(stride), "stride %d not a power of two (size=%d align=%d)", stride, sz, a)
			require.GreaterOrEqual(t, stride, sz, "stride below payload size")
			require.GreaterOrEqual(t, stride, a, "stride below baseline alignment")

			// Smallest such value: halving it must violate one of the bounds.
			half := stride / 2
			require.True(t, half < sz || half < a,
				"stride %d not minimal for size=%d align=%d", stride, sz, a)
		}
	}
}

func Test_ComputeStride_Baseline(t *testing.T) {
	// Tiny payloads land exactly on the baseline alignment.
	require.Equal(t, 64, computeStride(1, 64))
	require.Equal(t, 64, computeStride(16, 64))
	require.Equal(t, 64, computeStride(64, 64))
	// Payloads past the baseline round up to the next power of two.
	require.Equal(t, 128, computeStride(65, 64))
	require.Equal(t, 8192, computeStride(5000, 64))
}

func Test_IsPow2(t *testing.T) {
	require.True(t, isPow2(1))
	require.True(t, isPow2(64))
	require.True(t, isPow2(1<<30))
	require.False(t, isPow2(0))
	require.False(t, isPow2(-64))
	require.False(t, isPow2(48))
}
