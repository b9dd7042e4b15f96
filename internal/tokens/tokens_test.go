package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestSignParse_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := Sign(42, "user", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token, testSecret)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "user", claims.Role)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParse_TokenNeverResolvesToAnotherUser(t *testing.T) {
	t.Parallel()

	tokenA, err := Sign(1, "user", testSecret)
	require.NoError(t, err)
	tokenB, err := Sign(2, "user", testSecret)
	require.NoError(t, err)

	claimsA, err := Parse(tokenA, testSecret)
	require.NoError(t, err)
	claimsB, err := Parse(tokenB, testSecret)
	require.NoError(t, err)

	idA, err := claimsA.UserID()
	require.NoError(t, err)
	idB, err := claimsB.UserID()
	require.NoError(t, err)

	assert.Equal(t, uint(1), idA)
	assert.Equal(t, uint(2), idB)
	assert.NotEqual(t, idA, idB)
}

func TestParse_Rejections(t *testing.T) {
	t.Parallel()

	token, err := Sign(7, "user", testSecret)
	require.NoError(t, err)

	tampered := token + "x"

	tests := []struct {
		name   string
		raw    string
		secret []byte
	}{
		{name: "empty token", raw: "", secret: testSecret},
		{name: "garbage token", raw: "not.a.jwt", secret: testSecret},
		{name: "tampered signature", raw: tampered, secret: testSecret},
		{name: "wrong secret", raw: token, secret: []byte("other-secret")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.raw, tt.secret)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
