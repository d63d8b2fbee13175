// Package memzero wipes sensitive byte buffers.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros. The write goes through
// subtle.ConstantTimeCopy so the compiler cannot treat it as a dead store;
// a plain loop can be elided when the buffer is about to go out of scope.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
