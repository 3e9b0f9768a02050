// Package volatile provides loads and stores that the compiler never elides,
// merges or reorders with respect to each other. Memory-mapped peripheral
// registers must only be accessed through this package.
package volatile

import "sync/atomic"

// LoadUint32 reads the 32-bit word at addr.
func LoadUint32(addr *uint32) (val uint32) {
	return atomic.LoadUint32(addr)
}

// StoreUint32 writes val to the 32-bit word at addr.
func StoreUint32(addr *uint32, val uint32) {
	atomic.StoreUint32(addr, val)
}
