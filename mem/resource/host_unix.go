//go:build linux || darwin

package resource

import "golang.org/x/sys/unix"

// mapAnon reserves size bytes as a private anonymous mapping.
func mapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
}

// unmapAnon releases a mapping created by mapAnon.
func unmapAnon(buf []byte) error {
	return unix.Munmap(buf)
}
