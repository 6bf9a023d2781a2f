//go:build unix

package sysmem

import "golang.org/x/sys/unix"

// Reserve obtains one anonymous, page-aligned, zero-filled mapping of n
// bytes from the operating system.
func Reserve(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

// Release returns a mapping obtained from Reserve. The slice must be the
// exact value Reserve returned.
func Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Munmap(buf)
}
