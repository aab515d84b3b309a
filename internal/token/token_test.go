package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "super-secret"
	testWindow = 600 * time.Second
)

func TestValidWithinWindow(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tok, err := NewIssuer(testSecret).Issue(now)
	require.NoError(t, err)

	v := NewValidator(testSecret, testWindow)
	assert.True(t, v.Valid(tok, now))
	assert.True(t, v.Valid(tok, now.Add(testWindow-time.Second)))
}

func TestExpiredAfterWindow(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tok, err := NewIssuer(testSecret).Issue(now)
	require.NoError(t, err)

	v := NewValidator(testSecret, testWindow)
	assert.False(t, v.Valid(tok, now.Add(testWindow)))
	assert.False(t, v.Valid(tok, now.Add(testWindow+time.Hour)))
}

func TestTamperedDigest(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tok, err := NewIssuer(testSecret).Issue(now)
	require.NoError(t, err)

	// flip one character of the hex digest
	b := []byte(tok)
	last := len(b) - 1
	if b[last] == 'a' {
		b[last] = 'b'
	} else {
		b[last] = 'a'
	}

	assert.False(t, NewValidator(testSecret, testWindow).Valid(string(b), now))
}

func TestWrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tok, err := NewIssuer("other-secret").Issue(now)
	require.NoError(t, err)

	assert.False(t, NewValidator(testSecret, testWindow).Valid(tok, now))
}

func TestMalformedTokens(t *testing.T) {
	v := NewValidator(testSecret, testWindow)
	now := time.Unix(1700000000, 0)

	assert.False(t, v.Valid("", now))
	assert.False(t, v.Valid("short", now))
	assert.False(t, v.Valid("17000000001234567890", now)) // no digest at all
	assert.False(t, v.Valid("not-a-numbXXXXXXXXXXdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", now))
}

func TestIssueFormat(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tok, err := NewIssuer(testSecret).Issue(now)
	require.NoError(t, err)

	require.Len(t, tok, timestampLen+nonceLen+40) // sha1 hex is 40 chars
	assert.Equal(t, "1700000000", tok[:timestampLen])
}
