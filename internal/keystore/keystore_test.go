package keystore_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"curvekey/internal/ecdh"
	"curvekey/internal/keystore"
)

func newKey(t *testing.T) *ecdh.Key {
	t.Helper()
	k := ecdh.NewKey()
	if err := k.Generate(rand.Reader, ecdh.KeySize); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return k
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := keystore.New(t.TempDir())
	k := newKey(t)

	if err := s.Save("hunter2", k); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load("hunter2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got.Public(), k.Public()) {
		t.Fatalf("public mismatch: got %x want %x", got.Public(), k.Public())
	}

	want := make([]byte, ecdh.KeySize)
	have := make([]byte, ecdh.KeySize)
	if _, err := k.ExportPrivate(want); err != nil {
		t.Fatalf("ExportPrivate: %v", err)
	}
	if _, err := got.ExportPrivate(have); err != nil {
		t.Fatalf("ExportPrivate (loaded): %v", err)
	}
	if !bytes.Equal(want, have) {
		t.Fatal("private mismatch after load")
	}
}

func TestLoadWrongPassphrase(t *testing.T) {
	s := keystore.New(t.TempDir())
	if err := s.Save("correct horse", newKey(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Load("battery staple"); !errors.Is(err, keystore.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestLoadMissingKey(t *testing.T) {
	s := keystore.New(t.TempDir())
	if _, err := s.Load("anything"); !errors.Is(err, keystore.ErrNoKey) {
		t.Fatalf("want ErrNoKey, got %v", err)
	}
}
