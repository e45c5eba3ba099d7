/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/voedger/websecurity/pkg/isecurity"
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := Provide(Params{Priority: 10})
	require.Equal(DefaultID, s.ID())
	require.Equal(10, s.Priority())
	require.NoError(s.AddCaller("alice", "pwd", "admins", "users"))

	res, err := s.Validate(ctx, isecurity.NewUsernamePasswordCredential("alice", "pwd"))
	require.NoError(err)
	require.True(res.IsValid())
	require.Equal("alice", res.CallerName())
	require.Equal([]string{"admins", "users"}, res.Groups)
	require.Equal(DefaultID, res.IdentityStoreID)

	groups, err := s.CallerGroups(ctx, res)
	require.NoError(err)
	require.Equal([]string{"admins", "users"}, groups)

	t.Run("basic credential", func(t *testing.T) {
		// alice:pwd
		c, err := isecurity.NewBasicAuthenticationCredential("YWxpY2U6cHdk")
		require.NoError(err)
		res, err := s.Validate(ctx, c)
		require.NoError(err)
		require.True(res.IsValid())
	})

	t.Run("normalized name", func(t *testing.T) {
		res, err := s.Validate(ctx, isecurity.NewUsernamePasswordCredential("ａｌｉｃｅ", "pwd"))
		require.NoError(err)
		require.True(res.IsValid())
		require.Equal("alice", res.CallerName())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, c := range []*isecurity.UsernamePasswordCredential{
			isecurity.NewUsernamePasswordCredential("alice", "wrong"),
			isecurity.NewUsernamePasswordCredential("bob", "pwd"),
			isecurity.NewUsernamePasswordCredential("", "pwd"),
		} {
			res, err := s.Validate(ctx, c)
			require.NoError(err)
			require.Equal(isecurity.ValidationStatus_Invalid, res.Status)
		}
	})

	t.Run("cleared credential is invalid", func(t *testing.T) {
		c := isecurity.NewUsernamePasswordCredential("alice", "pwd")
		c.Clear()
		res, err := s.Validate(ctx, c)
		require.NoError(err)
		require.Equal(isecurity.ValidationStatus_Invalid, res.Status)
	})

	t.Run("not supported credential", func(t *testing.T) {
		res, err := s.Validate(ctx, isecurity.NewBearerTokenCredential("token"))
		require.NoError(err)
		require.Equal(isecurity.ValidationStatus_NotValidated, res.Status)
	})

	t.Run("remove", func(t *testing.T) {
		s.RemoveCaller("alice")
		res, err := s.Validate(ctx, isecurity.NewUsernamePasswordCredential("alice", "pwd"))
		require.NoError(err)
		require.False(res.IsValid())
	})

	require.ErrorIs(s.AddCaller("", "pwd"), ErrCallerNameIsEmpty)
}

func TestProvideFromFile(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("bobpwd"), bcrypt.MinCost)
	require.NoError(err)
	fileName := filepath.Join(t.TempDir(), "callers.yaml")
	require.NoError(os.WriteFile(fileName, []byte(`
callers:
  - name: alice
    password: pwd
    groups: [admins]
  - name: bob
    passwordHash: `+string(hash)+`
`), 0600))

	s, err := ProvideFromFile(Params{ID: "file"}, fileName)
	require.NoError(err)

	res, err := s.Validate(ctx, isecurity.NewUsernamePasswordCredential("alice", "pwd"))
	require.NoError(err)
	require.Equal([]string{"admins"}, res.Groups)
	require.Equal("file", res.IdentityStoreID)

	res, err = s.Validate(ctx, isecurity.NewUsernamePasswordCredential("bob", "bobpwd"))
	require.NoError(err)
	require.True(res.IsValid())
	require.Empty(res.Groups)

	require.NoError(os.WriteFile(fileName, []byte("callers: [{name: carol}]"), 0600))
	_, err = ProvideFromFile(Params{}, fileName)
	require.ErrorIs(err, ErrNoPassword)

	_, err = ProvideFromFile(Params{}, filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}
