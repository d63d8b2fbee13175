package ecdh

// Keys are stored and exchanged in big-endian order while the ladder works
// on little-endian encodings. toExternal and toInternal are inverses of each
// other; both reverse all 32 bytes. dst and src must not overlap.

// toExternal converts a value from the ladder's little-endian working order
// to the big-endian storage order.
func toExternal(dst, src *[KeySize]byte) {
	for i, b := range src {
		dst[KeySize-1-i] = b
	}
}

// toInternal converts a value from big-endian storage order back to the
// ladder's little-endian working order.
func toInternal(dst, src *[KeySize]byte) {
	for i, b := range src {
		dst[KeySize-1-i] = b
	}
}
