// Package auth issues opaque session tokens.
//
// A token is the hex SHA-256 digest of the username, the issue time and a
// fresh random component. Tokens are not stored or bound to the account;
// tracking them is left to callers.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// TokenEntropySize is the number of random bytes mixed into every token.
const TokenEntropySize = 16

// GenerateToken returns a 64-character lowercase hex session token for
// username. now and rnd are supplied by the caller so tests can pin them;
// two calls at the same instant still differ through rnd.
func GenerateToken(username string, now time.Time, rnd io.Reader) (string, error) {
	nonce, err := common.RandHexString(rnd, TokenEntropySize)
	if err != nil {
		return "", err
	}

	raw := username + ":" + formatTimestamp(now) + ":" + nonce
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:]), nil
}

// formatTimestamp renders t as unix seconds with a nanosecond fraction.
func formatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%09d", t.Unix(), t.Nanosecond())
}
