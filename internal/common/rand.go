package common

import (
	"encoding/hex"
	"fmt"
	"io"
)

// RandBytes reads exactly size bytes from r.
//
// r is normally crypto/rand.Reader; tests may pass a deterministic source.
// A short read is reported as an error rather than returning a partially
// filled buffer.
func RandBytes(r io.Reader, size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// RandHexString reads size bytes from r and returns them hex-encoded.
// The result is twice as long as size.
//
// Example:
//
//	s, err := RandHexString(rand.Reader, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s) // e.g., "9f2d4c3a5e6b1a7d..."
func RandHexString(r io.Reader, size int) (string, error) {
	b, err := RandBytes(r, size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used for passwords read from the terminal once they are no longer needed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
