// Package ecdh exposes the Curve25519 key object and its lifecycle.
//
// Contents
//
//   - Key generation and shared-secret derivation (Generate, SharedSecret)
//   - Serialized public-key export/import with a length+tag header
//     (ExportPublic, ImportPublic)
//   - Raw private/public key export/import (ExportPrivate, ImportPrivate)
//   - Explicit key destruction (Wipe) and size query (Size)
//
// # Notes
//
// Keys are held in external big-endian byte order; the ladder in
// internal/curve works little-endian, and the two orders are converted at
// the boundary of every operation. The derived shared secret is handed back
// in the ladder's little-endian order, matching the wire convention of the
// format this package interoperates with. Every intermediate buffer holding
// secret material is wiped before an operation returns, on failure paths
// included.
//
// A Key is not safe for concurrent use; callers must serialize access to a
// single instance.
package ecdh
