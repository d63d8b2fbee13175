package ecdh

import "curvekey/internal/util/memzero"

// Curve25519 keys travel as serialized strings rather than ASN.1
// structures. A public key is a two-byte header (total length, format tag)
// followed by the 32 key bytes in external order; a private key is the bare
// 32 bytes.

// ExportPublic writes the serialized public key into out and returns the
// number of bytes written (PublicBlobSize). A buffer shorter than
// PublicBlobSize fails with *ShortBufferError and nothing is written.
func (k *Key) ExportPublic(out []byte) (int, error) {
	if k == nil {
		return 0, ErrNilKey
	}
	if len(out) < PublicBlobSize {
		return 0, &ShortBufferError{Need: PublicBlobSize}
	}
	out[0] = PublicBlobSize
	out[1] = k.format
	copy(out[2:PublicBlobSize], k.pub[:])
	return PublicBlobSize, nil
}

// ImportPublic parses a serialized public key into k and binds the domain
// parameters. A blob whose length is not exactly PublicBlobSize or whose tag
// byte is not recognized fails with ErrMalformedKey, leaving k untouched.
func (k *Key) ImportPublic(in []byte) error {
	if k == nil {
		return ErrNilKey
	}
	if len(in) != PublicBlobSize || in[1] != FormatMontgomeryX {
		return ErrMalformedKey
	}
	copy(k.pub[:], in[2:PublicBlobSize])
	k.format = in[1]
	k.params = Curve25519
	return nil
}

// ExportPrivate copies the raw 32-byte private scalar into out and returns
// the number of bytes written. A buffer shorter than KeySize fails with
// *ShortBufferError carrying the required size, and nothing is written. On
// success the first KeySize bytes of out are zeroed before being filled.
func (k *Key) ExportPrivate(out []byte) (int, error) {
	if k == nil {
		return 0, ErrNilKey
	}
	if len(out) < KeySize {
		return 0, &ShortBufferError{Need: KeySize}
	}
	memzero.Zero(out[:KeySize])
	copy(out[:KeySize], k.priv[:])
	return KeySize, nil
}

// ImportPrivate loads a raw private scalar and raw public point, both in
// external order and both exactly KeySize bytes, and binds the domain
// parameters. The bytes are copied verbatim: private material is assumed to
// have been clamped by whoever produced it.
func (k *Key) ImportPrivate(priv, pub []byte) error {
	if k == nil {
		return ErrNilKey
	}
	if len(priv) != KeySize || len(pub) != KeySize {
		return ErrKeySize
	}
	copy(k.priv[:], priv)
	copy(k.pub[:], pub)
	k.format = FormatMontgomeryX
	k.params = Curve25519
	return nil
}
