// Package token implements the shared-secret access tokens that gate uploads.
//
// A token is a single opaque string: the first 10 characters are a decimal
// Unix timestamp, the next 10 a random nonce, and the remainder the
// lowercase-hex SHA-1 digest of the timestamp (decimal form), nonce and
// shared secret concatenated.
package token

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const (
	timestampLen = 10
	nonceLen     = 10

	nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Validator checks tokens against a shared secret and an expiration window.
type Validator struct {
	secret string
	window time.Duration
}

// NewValidator creates a Validator for the given secret and window.
func NewValidator(secret string, window time.Duration) *Validator {
	return &Validator{secret: secret, window: window}
}

// Valid reports whether tok was minted with the shared secret and has not
// outlived the expiration window at the given time. Malformed or truncated
// tokens are simply invalid, never an error.
func (v *Validator) Valid(tok string, now time.Time) bool {
	if len(tok) <= timestampLen+nonceLen {
		return false
	}

	ts, err := strconv.ParseInt(tok[:timestampLen], 10, 64)
	if err != nil {
		return false
	}
	nonce := tok[timestampLen : timestampLen+nonceLen]
	got := tok[timestampLen+nonceLen:]

	want := digest(ts, nonce, v.secret)
	if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
		return false
	}
	return ts+int64(v.window/time.Second) > now.Unix()
}

// Issuer mints tokens for trusted callers. The original deployment relied on
// an external token issuer; keeping one here lets backends and tests produce
// tokens without reimplementing the scheme.
type Issuer struct {
	secret string
}

// NewIssuer creates an Issuer bound to the shared secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: secret}
}

// Issue mints a token stamped with the given time.
func (i *Issuer) Issue(now time.Time) (string, error) {
	nonce, err := randomNonce()
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	ts := now.Unix()
	return fmt.Sprintf("%010d%s%s", ts, nonce, digest(ts, nonce, i.secret)), nil
}

func digest(ts int64, nonce, secret string) string {
	sum := sha1.Sum([]byte(strconv.FormatInt(ts, 10) + nonce + secret))
	return hex.EncodeToString(sum[:])
}

func randomNonce() (string, error) {
	b := make([]byte, nonceLen)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(nonceAlphabet))))
		if err != nil {
			return "", err
		}
		b[i] = nonceAlphabet[n.Int64()]
	}
	return string(b), nil
}
