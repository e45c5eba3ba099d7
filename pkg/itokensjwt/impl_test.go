/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package itokensjwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/itokens"
)

var (
	testTime     = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	testDuration = time.Minute
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	signer := ProvideITokens(SecretKeyExample, coreutils.NewMockTime(testTime))

	var token string
	t.Run("Prepare token", func(t *testing.T) {
		var err error
		token, err = signer.IssueToken("alice", []string{"admins", "users"}, testDuration)
		require.NoError(err)
		require.Len(strings.Split(token, "."), 3)
	})

	t.Run("Verify token", func(t *testing.T) {
		payload, err := signer.ValidateToken(token)
		require.NoError(err)
		require.Equal("alice", payload.CallerName)
		require.Equal([]string{"admins", "users"}, payload.Groups)
		require.Equal(testDuration, payload.Duration)
		require.True(testTime.Equal(payload.IssuedAt))
	})
}

func TestErrors(t *testing.T) {
	require := require.New(t)
	mockTime := coreutils.NewMockTime(testTime)
	signer := ProvideITokens(SecretKeyExample, mockTime)
	token, err := signer.IssueToken("alice", nil, testDuration)
	require.NoError(err)

	t.Run("wrong token", func(t *testing.T) {
		_, err := signer.ValidateToken("wrong")
		require.ErrorIs(err, itokens.ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		_, err := signer.ValidateToken(parts[0] + "." + parts[1] + ".AAAA")
		require.ErrorIs(err, itokens.ErrInvalidToken)
	})

	t.Run("other key", func(t *testing.T) {
		otherKey := make(SecretKeyType, SecretKeyLength)
		other := ProvideITokens(otherKey, mockTime)
		_, err := other.ValidateToken(token)
		require.ErrorIs(err, itokens.ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "other",
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(testTime.Add(time.Hour)),
		}).SignedString([]byte(SecretKeyExample))
		require.NoError(err)
		_, err = signer.ValidateToken(foreign)
		require.ErrorIs(err, itokens.ErrInvalidToken)
	})

	t.Run("no expiration", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:  issuer,
			Subject: "alice",
		}).SignedString([]byte(SecretKeyExample))
		require.NoError(err)
		_, err = signer.ValidateToken(foreign)
		require.ErrorIs(err, itokens.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		mockTime.Add(testDuration + time.Second)
		_, err := signer.ValidateToken(token)
		require.ErrorIs(err, itokens.ErrTokenExpired)
	})
}

func TestShortKeyPanics(t *testing.T) {
	require.Panics(t, func() { NewJWTSigner(SecretKeyType("short"), coreutils.NewITime()) })
}

func TestCryptoHash256(t *testing.T) {
	require := require.New(t)
	signer := ProvideITokens(SecretKeyExample, coreutils.NewITime())
	other := ProvideITokens(make(SecretKeyType, SecretKeyLength), coreutils.NewITime())

	h1 := signer.CryptoHash256([]byte("data"))
	require.Equal(h1, signer.CryptoHash256([]byte("data")))
	require.NotEqual(h1, signer.CryptoHash256([]byte("data1")))
	require.NotEqual(h1, other.CryptoHash256([]byte("data")))
}
