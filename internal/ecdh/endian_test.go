package ecdh

import "testing"

func TestEndianConversionInvolution(t *testing.T) {
	var src, ext, back [KeySize]byte
	for i := range src {
		src[i] = byte(i * 7)
	}
	toExternal(&ext, &src)
	toInternal(&back, &ext)
	if back != src {
		t.Fatalf("toInternal(toExternal(x)) != x: %x", back)
	}

	toInternal(&ext, &src)
	toExternal(&back, &ext)
	if back != src {
		t.Fatalf("toExternal(toInternal(x)) != x: %x", back)
	}
}

func TestEndianConversionReverses(t *testing.T) {
	var src, ext [KeySize]byte
	for i := range src {
		src[i] = byte(i)
	}
	toExternal(&ext, &src)
	for i := range ext {
		if ext[i] != byte(KeySize-1-i) {
			t.Fatalf("byte %d: got %d want %d", i, ext[i], KeySize-1-i)
		}
	}
}
