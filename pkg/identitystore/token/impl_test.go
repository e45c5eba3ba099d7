/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/itokensjwt"
)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mockTime := coreutils.NewMockTime(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC))
	s := Provide(itokensjwt.ProvideITokens(itokensjwt.SecretKeyExample, mockTime), 1)

	token, err := s.IssueToken(isecurity.NewValidResult(isecurity.NewCallerPrincipal("alice"), []string{"admins"}), time.Hour)
	require.NoError(err)

	res, err := s.Validate(ctx, isecurity.NewBearerTokenCredential(token))
	require.NoError(err)
	require.True(res.IsValid())
	require.Equal("alice", res.CallerName())
	require.Equal([]string{"admins"}, res.Groups)
	require.Equal(DefaultID, res.IdentityStoreID)

	groups, err := s.CallerGroups(ctx, res)
	require.NoError(err)
	require.Empty(groups)

	t.Run("invalid token", func(t *testing.T) {
		res, err := s.Validate(ctx, isecurity.NewBearerTokenCredential("wrong"))
		require.NoError(err)
		require.Equal(isecurity.ValidationStatus_Invalid, res.Status)

		res, err = s.Validate(ctx, isecurity.NewBearerTokenCredential(""))
		require.NoError(err)
		require.Equal(isecurity.ValidationStatus_Invalid, res.Status)
	})

	t.Run("other credentials are not validated", func(t *testing.T) {
		res, err := s.Validate(ctx, isecurity.NewUsernamePasswordCredential("alice", "pwd"))
		require.NoError(err)
		require.Equal(isecurity.ValidationStatus_NotValidated, res.Status)
	})

	t.Run("expired", func(t *testing.T) {
		mockTime.Add(2 * time.Hour)
		res, err := s.Validate(ctx, isecurity.NewBearerTokenCredential(token))
		require.NoError(err)
		require.Equal(isecurity.ValidationStatus_Invalid, res.Status)
	})

	_, err = s.IssueToken(isecurity.InvalidResult, time.Hour)
	require.ErrorIs(err, ErrResultIsNotValid)
}
