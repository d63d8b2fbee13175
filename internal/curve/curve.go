package curve

import (
	"filippo.io/edwards25519/field"

	"curvekey/internal/util/memzero"
)

// ScalarSize is the length of a Curve25519 private scalar in bytes.
const ScalarSize = 32

// PointSize is the length of an encoded u-coordinate in bytes.
const PointSize = 32

// Basepoint is the canonical generator u = 9 in little-endian encoding.
var Basepoint = [PointSize]byte{9}

// Clamp forces s into the valid Curve25519 private-scalar form: the low
// three bits are cleared so the scalar is a multiple of the cofactor, the
// top bit is cleared so the value stays below 2^255, and bit 254 is set so
// every scalar drives the ladder through the same 255 iterations.
//
// Clamp is idempotent; clamping a clamped scalar is a no-op.
//
// https://cr.yp.to/ecdh.html; Computing secret keys.
func Clamp(s *[ScalarSize]byte) {
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64
}

// ScalarMult sets dst to the u-coordinate of scalar*point using the
// Montgomery ladder. The clamp masks are reapplied to a copy of scalar
// before use, so callers holding an already-clamped scalar see no change in
// behavior. An all-zero point yields an all-zero dst (zero has no inverse in
// the field; inverting it produces zero).
func ScalarMult(dst, scalar, point *[PointSize]byte) {
	var e [ScalarSize]byte
	copy(e[:], scalar[:])
	Clamp(&e)
	defer memzero.Zero(e[:])

	var x1, x2, z2, x3, z3, tmp0, tmp1 field.Element
	x1.SetBytes(point[:])
	x2.One()
	z2.Zero()
	x3.Set(&x1)
	z3.One()

	// Bit 255 is always clear and bit 254 always set after clamping, so the
	// walk starts at 254. The swap decision is the XOR of the current and
	// previous bit; it reaches the field elements only through Swap.
	swap := 0
	for pos := 254; pos >= 0; pos-- {
		b := int(e[pos/8]>>(uint(pos)&7)) & 1
		swap ^= b
		x2.Swap(&x3, swap)
		z2.Swap(&z3, swap)
		swap = b

		tmp0.Subtract(&x3, &z3)
		tmp1.Subtract(&x2, &z2)
		x2.Add(&x2, &z2)
		z2.Add(&x3, &z3)
		z3.Multiply(&tmp0, &x2)
		z2.Multiply(&z2, &tmp1)
		tmp0.Square(&tmp1)
		tmp1.Square(&x2)
		x3.Add(&z3, &z2)
		z2.Subtract(&z3, &z2)
		x2.Multiply(&tmp1, &tmp0)
		tmp1.Subtract(&tmp1, &tmp0)
		z2.Square(&z2)
		z3.Mult32(&tmp1, 121666) // a24 = (486662 - 2) / 4
		x3.Square(&x3)
		tmp0.Add(&tmp0, &z3)
		z3.Multiply(&x1, &z2)
		z2.Multiply(&tmp1, &tmp0)
	}
	// Undo the one-bit delay of the swap convention.
	x2.Swap(&x3, swap)
	z2.Swap(&z3, swap)

	z2.Invert(&z2)
	x2.Multiply(&x2, &z2)
	copy(dst[:], x2.Bytes())
}

// ScalarBaseMult sets dst to scalar*Basepoint.
func ScalarBaseMult(dst, scalar *[PointSize]byte) {
	ScalarMult(dst, scalar, &Basepoint)
}
