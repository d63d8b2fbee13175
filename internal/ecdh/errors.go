package ecdh

import (
	"errors"
	"fmt"
)

var (
	// ErrNilKey is returned when an operation is given a nil key handle.
	ErrNilKey = errors.New("nil curve25519 key")

	// ErrNilRandom is returned by Generate when no random source is supplied.
	ErrNilRandom = errors.New("nil random source")

	// ErrKeySize is returned for a requested or supplied key length other
	// than KeySize.
	ErrKeySize = errors.New("unsupported curve25519 key size")

	// ErrKeyNotSet is returned when an operation needs key material that has
	// not been generated or imported.
	ErrKeyNotSet = errors.New("curve25519 key material not set")

	// ErrMalformedKey is returned by ImportPublic for a blob of the wrong
	// length or with an unrecognized format tag.
	ErrMalformedKey = errors.New("malformed curve25519 public key encoding")

	// ErrUnsafePublicKey is returned by SharedSecret when the peer public
	// key's leading byte has its high bit set. Such encodings are rejected
	// before any arithmetic to avoid implementation fingerprinting.
	ErrUnsafePublicKey = errors.New("peer public key rejected: leading byte has high bit set")
)

// ShortBufferError reports a caller-supplied output buffer smaller than the
// operation requires. Need is the minimum length that would succeed.
type ShortBufferError struct {
	Need int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("output buffer too small, need %d bytes", e.Need)
}
