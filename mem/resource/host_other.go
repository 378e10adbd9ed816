//go:build !linux && !darwin

package resource

// mapAnon falls back to a heap slice on platforms without anonymous mmap
// support in x/sys. The live table keeps the slice reachable until
// Deallocate, which is all the strategies above require.
func mapAnon(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// unmapAnon releases a fallback reservation; the garbage collector reclaims
// the slice once the live table drops it.
func unmapAnon(buf []byte) error {
	return nil
}
