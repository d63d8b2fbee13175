// Package keystore persists a Curve25519 key pair encrypted under a
// passphrase.
package keystore

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"curvekey/internal/ecdh"
	"curvekey/internal/util/memzero"
)

const (
	keyFile = "key.enc"

	// The current supported version of the encrypted blob format on disk.
	keystoreFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

	// ErrNoKey is returned by Load when no key has been saved yet.
	ErrNoKey = errors.New("no key stored; run keygen first")
)

// blob is the on-disk JSON structure holding the ciphertext and KDF
// parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Store reads and writes the encrypted key file under a directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store { return &Store{dir: dir} }

// Save encrypts k's raw private and public bytes under passphrase and writes
// them to the key file. The plaintext copy is wiped before Save returns.
func (s *Store) Save(passphrase string, k *ecdh.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make([]byte, 2*ecdh.KeySize)
	defer memzero.Zero(raw)
	if _, err := k.ExportPrivate(raw[:ecdh.KeySize]); err != nil {
		return err
	}
	copy(raw[ecdh.KeySize:], k.Public())

	N, r, p := scryptParamsDefault()
	enc, err := seal(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, keyFile), enc, 0o600)
}

// Load decrypts the key file and reconstructs the key pair.
func (s *Store) Load(passphrase string) (*ecdh.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, err := os.ReadFile(filepath.Join(s.dir, keyFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoKey
		}
		return nil, err
	}
	raw, err := open(passphrase, enc)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	if len(raw) != 2*ecdh.KeySize {
		return nil, ErrWrongPassphrase
	}

	k := ecdh.NewKey()
	if err := k.ImportPrivate(raw[:ecdh.KeySize], raw[ecdh.KeySize:]); err != nil {
		return nil, err
	}
	return k, nil
}

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:      keystoreFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// open decrypts the JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
