package ecdh

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"curvekey/internal/curve"
	"curvekey/internal/util/memzero"
)

const (
	// KeySize is the length of both the private scalar and the public
	// u-coordinate in bytes.
	KeySize = 32

	// PublicBlobSize is the length of a serialized public key: a one-byte
	// total length, a one-byte format tag and the key itself.
	PublicBlobSize = KeySize + 2

	// FormatMontgomeryX tags a serialized Montgomery u-coordinate. The value
	// is provisional and carries no external standardization guarantee; it
	// is fixed here and must match on import.
	FormatMontgomeryX byte = 0x41
)

// Params describes a curve domain parameter set.
type Params struct {
	Size int    // key size in octets
	Name string // curve name
}

// Curve25519 is the only parameter set currently defined. It is shared
// read-only by every Key and never copied.
var Curve25519 = &Params{Size: KeySize, Name: "CURVE25519"}

// Key holds a Curve25519 key pair. Both the public point and the private
// scalar are kept in external big-endian order; see package doc.
//
// The zero value is usable with Generate and the import functions, but Init
// puts a Key into a defined empty state explicitly.
type Key struct {
	format byte
	params *Params
	pub    [KeySize]byte
	priv   [KeySize]byte
}

// NewKey returns an initialized empty Key.
func NewKey() *Key {
	k := new(Key)
	k.Init()
	return k
}

// Init sets the format tag, binds the Curve25519 domain parameters and
// zero-fills both key buffers. It returns ErrNilKey on a nil receiver.
func (k *Key) Init() error {
	if k == nil {
		return ErrNilKey
	}
	k.format = FormatMontgomeryX
	k.params = Curve25519
	memzero.Zero(k.pub[:])
	memzero.Zero(k.priv[:])
	return nil
}

// Generate draws a fresh private scalar from rng, clamps it and computes the
// matching public point. size must equal KeySize; the single parameter set
// defines no other length. An rng failure is returned to the caller
// unchanged. The raw seed and every little-endian working copy are wiped
// before Generate returns.
func (k *Key) Generate(rng io.Reader, size int) error {
	if k == nil {
		return ErrNilKey
	}
	if rng == nil {
		return ErrNilRandom
	}
	if size != KeySize {
		return ErrKeySize
	}

	var scalar [KeySize]byte
	if _, err := io.ReadFull(rng, scalar[:]); err != nil {
		return err
	}
	defer memzero.Zero(scalar[:])
	curve.Clamp(&scalar)

	var pub [KeySize]byte
	curve.ScalarBaseMult(&pub, &scalar)

	k.format = FormatMontgomeryX
	k.params = Curve25519
	toExternal(&k.priv, &scalar)
	toExternal(&k.pub, &pub)
	return nil
}

// SharedSecret derives the 32-byte shared secret from k's private scalar and
// peer's public point and writes it to out, returning the number of bytes
// written. The secret is written in the ladder's little-endian order.
//
// The peer key is rejected before any arithmetic if the high bit of its
// stored leading byte is set. A buffer shorter than KeySize fails with
// *ShortBufferError and nothing is written.
func (k *Key) SharedSecret(peer *Key, out []byte) (int, error) {
	if k == nil || peer == nil {
		return 0, ErrNilKey
	}
	if allZero(k.priv[:]) || allZero(peer.pub[:]) {
		return 0, ErrKeyNotSet
	}
	if peer.pub[0] > 0x7f {
		return 0, ErrUnsafePublicKey
	}
	if len(out) < KeySize {
		return 0, &ShortBufferError{Need: KeySize}
	}

	var scalar, point, secret [KeySize]byte
	toInternal(&scalar, &k.priv)
	toInternal(&point, &peer.pub)
	defer memzero.Zero(scalar[:])
	defer memzero.Zero(point[:])
	defer memzero.Zero(secret[:])

	curve.ScalarMult(&secret, &scalar, &point)
	copy(out[:KeySize], secret[:])
	return KeySize, nil
}

// Wipe zero-fills both key buffers and drops the domain-parameter binding.
// It is a no-op on a nil receiver. Private material does not survive past
// this call.
func (k *Key) Wipe() {
	if k == nil {
		return
	}
	k.params = nil
	memzero.Zero(k.pub[:])
	memzero.Zero(k.priv[:])
}

// Size reports the key size in bytes of k's parameter set, or 0 for a nil or
// wiped key. It is a query and never fails.
func (k *Key) Size() int {
	if k == nil || k.params == nil {
		return 0
	}
	return k.params.Size
}

// Public returns a copy of the stored public point in external order.
func (k *Key) Public() []byte {
	out := make([]byte, KeySize)
	copy(out, k.pub[:])
	return out
}

// Fingerprint returns a short hex fingerprint of the stored public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func (k *Key) Fingerprint() string {
	sum := sha256.Sum256(k.pub[:])
	return hex.EncodeToString(sum[:10])
}

// allZero reports whether b contains only zero bytes. The scan accumulates
// over the whole buffer rather than returning at the first nonzero byte.
func allZero(b []byte) bool {
	var acc byte
	for _, x := range b {
		acc |= x
	}
	return acc == 0
}
