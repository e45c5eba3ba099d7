/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurity

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

type appPrincipal struct {
	name  string
	email string
}

func (p *appPrincipal) Name() string { return p.name }

func TestPrincipalsByType(t *testing.T) {
	require := require.New(t)

	app := &appPrincipal{name: "alice", email: "alice@example.com"}
	s := &Subject{}
	s.AddPrincipal(NewCallerPrincipal("alice"))
	s.AddPrincipal(app)
	s.AddPrincipal(NewGroupPrincipal("admins"))
	s.AddPrincipal(NewGroupPrincipal("users"))

	callers := PrincipalsByType[*CallerPrincipal](s)
	require.Len(callers, 1)
	require.Equal("alice", callers[0].Name())

	apps := PrincipalsByType[*appPrincipal](s)
	require.Len(apps, 1)
	require.Equal("alice@example.com", apps[0].email)

	require.Equal([]string{"admins", "users"}, s.Groups())
	require.True(s.HasPrincipal(app))
	require.Nil(PrincipalsByType[*CallerPrincipal](nil))

	s.Clear()
	require.True(s.IsEmpty())
	require.Empty(s.Groups())
}

func TestStatusString(t *testing.T) {
	require := require.New(t)
	require.Equal("NOT_DONE", AuthenticationStatus_NotDone.String())
	require.Equal("SEND_CONTINUE", AuthenticationStatus_SendContinue.String())
	require.Equal("SUCCESS", AuthenticationStatus_Success.String())
	require.Equal("SEND_FAILURE", AuthenticationStatus_SendFailure.String())
	require.Equal("AuthenticationStatus(4)", AuthenticationStatus_FakeLast.String())
	require.Equal("VALID", ValidationStatus_Valid.String())
	require.Equal("INVALID", ValidationStatus_Invalid.String())
	require.Equal("NOT_VALIDATED", ValidationStatus_NotValidated.String())
}

func TestBasicAuthenticationCredential(t *testing.T) {
	require := require.New(t)

	t.Run("basic usage", func(t *testing.T) {
		cred, err := NewBasicAuthenticationCredential(base64.StdEncoding.EncodeToString([]byte("alice:pa:ss")))
		require.NoError(err)
		require.Equal("alice", cred.Caller())
		require.Equal("pa:ss", cred.PasswordAsString())
		require.True(cred.IsValid())
		require.True(cred.CompareTo("alice", "pa:ss"))
		require.False(cred.CompareTo("alice", "wrong"))

		cred.Clear()
		require.True(cred.IsCleared())
		require.False(cred.IsValid())
		require.Empty(cred.Password())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewBasicAuthenticationCredential("%%%")
		require.ErrorIs(err, ErrMalformedBasicCredential)

		_, err = NewBasicAuthenticationCredential(base64.StdEncoding.EncodeToString([]byte("nocolon")))
		require.ErrorIs(err, ErrMalformedBasicCredential)
	})
}

func TestCredentials(t *testing.T) {
	require := require.New(t)

	co := NewCallerOnlyCredential("bob")
	require.True(co.IsValid())
	co.Clear()
	require.False(co.IsValid())

	bt := NewBearerTokenCredential("tok")
	require.Equal("tok", bt.Token())
	require.True(bt.IsValid())
	bt.Clear()
	require.True(bt.IsCleared())

	rm := NewRememberMeCredential("")
	require.False(rm.IsValid())
}

func TestResults(t *testing.T) {
	require := require.New(t)
	res := NewValidResult(NewCallerPrincipal("alice"), []string{"g"})
	require.True(res.IsValid())
	require.Equal("alice", res.CallerName())
	require.False(InvalidResult.IsValid())
	require.Empty(NotValidatedResult.CallerName())
}

func TestSecurityContextFrom(t *testing.T) {
	require := require.New(t)
	require.Nil(SecurityContextFrom(context.Background()))
}
