// Package cryptox implements the credential record used to store passwords:
// a random per-account salt and a PBKDF2-HMAC-SHA256 digest, encoded as
// "<salt_hex>:<digest_hex>".
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the number of random salt bytes per record.
	SaltSize = 16
	// DigestSize is the length of the derived key in bytes.
	DigestSize = 32
	// Iterations is the fixed PBKDF2 iteration count.
	Iterations = 100_000
	// RecordSeparator splits the salt and digest segments.
	RecordSeparator = ":"
)

// RecordLength is the length of an encoded credential record: 32 + 1 + 64.
const RecordLength = SaltSize*2 + len(RecordSeparator) + DigestSize*2

var errMalformedRecord = errors.New("malformed credential record")

// fallbackSalt is derived against when a stored record cannot be parsed.
var fallbackSalt = make([]byte, SaltSize)

var deriveKey = func(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, DigestSize, sha256.New)
}

// HashPassword generates a fresh salt from rnd and returns the encoded
// credential record for password.
//
// rnd must be a cryptographically secure source in production
// (crypto/rand.Reader). An error is returned only if rnd fails.
func HashPassword(rnd io.Reader, password string) (string, error) {
	salt, err := common.RandBytes(rnd, SaltSize)
	if err != nil {
		return "", err
	}
	digest := deriveKey([]byte(password), salt, Iterations)
	return EncodeCredentialRecord(salt, digest), nil
}

// EncodeCredentialRecord joins salt and digest in the stored record format.
func EncodeCredentialRecord(salt, digest []byte) string {
	return hex.EncodeToString(salt) + RecordSeparator + hex.EncodeToString(digest)
}

// ParseCredentialRecord splits and decodes an encoded record. It fails unless
// the record holds exactly two hex segments of SaltSize and DigestSize bytes.
func ParseCredentialRecord(record string) (salt, digest []byte, err error) {
	parts := strings.Split(record, RecordSeparator)
	if len(parts) != 2 {
		return nil, nil, errMalformedRecord
	}
	if len(parts[0]) != SaltSize*2 || len(parts[1]) != DigestSize*2 {
		return nil, nil, errMalformedRecord
	}

	salt, err = hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, errMalformedRecord
	}
	digest, err = hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, errMalformedRecord
	}
	return salt, digest, nil
}

// VerifyPassword reports whether password matches the stored record.
//
// A record that cannot be parsed is a plain mismatch: the caller cannot tell
// a corrupted record from a wrong password, and both cost one key derivation.
// The digest comparison runs in constant time.
func VerifyPassword(password, record string) bool {
	salt, expected, err := ParseCredentialRecord(record)
	if err != nil {
		deriveKey([]byte(password), fallbackSalt, Iterations)
		return false
	}
	actual := deriveKey([]byte(password), salt, Iterations)
	return subtle.ConstantTimeCompare(actual, expected) == 1
}
