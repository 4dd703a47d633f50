package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestJWTMakerRoundTrip(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenString, payload, err := maker.CreateToken("user-42", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	require.Equal(t, "user-42", payload.Subject)

	verified, err := maker.VerifyToken(tokenString)
	require.NoError(t, err)
	require.Equal(t, payload.ID, verified.ID)
	require.Equal(t, "user-42", verified.Subject)
}

func TestJWTMakerExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenString, _, err := maker.CreateToken("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(tokenString)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTMakerRejectsShortKey(t *testing.T) {
	_, err := NewJWTMaker(strings.Repeat("x", minSecretKeySize-1))
	require.Error(t, err)
}

func TestJWTMakerRejectsTamperedToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	tokenString, _, err := maker.CreateToken("user-42", time.Minute)
	require.NoError(t, err)

	otherMaker, err := NewJWTMaker(strings.Repeat("y", minSecretKeySize))
	require.NoError(t, err)

	_, err = otherMaker.VerifyToken(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}
