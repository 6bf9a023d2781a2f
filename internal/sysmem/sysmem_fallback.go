//go:build !unix

// Package sysmem provides platform-specific raw memory reservation for
// allocator pools.
package sysmem

// Reserve falls back to the Go heap when anonymous mappings are not
// available. The slice is zero-filled like a fresh mapping.
func Reserve(n int) ([]byte, error) {
	return make([]byte, n), nil
}

// Release is a no-op for heap-backed reservations; the garbage collector
// reclaims the slice once the caller drops it.
func Release(buf []byte) error {
	return nil
}
