package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	m := MustNewManager("secret", time.Hour)

	tok, expireAt, err := m.Sign(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expireAt, 2*time.Second)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestParseExpired(t *testing.T) {
	m := MustNewManager("secret", time.Minute)
	base := time.Now()
	m.now = func() time.Time { return base }

	tok, _, err := m.Sign(7)
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = m.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseRejects(t *testing.T) {
	m := MustNewManager("secret", time.Hour)
	other := MustNewManager("other", time.Hour)

	foreign, _, err := other.Sign(1)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: 1})
	wrongAlg, err := hs512.SignedString([]byte("secret"))
	require.NoError(t, err)

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{})
	anonymous, err := noUser.SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"empty":        "",
		"garbage":      "a.b.c",
		"two parts":    "a.b",
		"wrong secret": foreign,
		"alg none":     unsigned,
		"wrong alg":    wrongAlg,
		"missing user": anonymous,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(tok)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.Error(t, err)
	_, err = NewManager("secret", 0)
	assert.Error(t, err)

	m := MustNewManager("secret", time.Hour)
	_, _, err = m.Sign(0)
	assert.Error(t, err)
}
