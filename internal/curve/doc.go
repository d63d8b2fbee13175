// Package curve implements scalar multiplication on Curve25519 in
// Montgomery form.
//
// Contents
//
//   - Private-scalar clamping per RFC 7748 (Clamp)
//   - Constant-time variable-base scalar multiplication via the Montgomery
//     ladder (ScalarMult)
//   - Fixed-base multiplication against the generator u = 9 (ScalarBaseMult)
//
// # Notes
//
// Field arithmetic is delegated to filippo.io/edwards25519/field. The ladder
// runs a fixed 255 iterations for every input and consumes scalar bits only
// through the field element's constant-time Swap; no branch or memory access
// depends on secret data. Inputs and outputs are 32-byte little-endian
// u-coordinates.
package curve
