/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isessionmem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isession"
)

var testTime = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mockTime := coreutils.NewMockTime(testTime)
	store := Provide(time.Minute, mockTime)

	s, err := store.Create(ctx)
	require.NoError(err)
	require.NotEmpty(s.ID)
	require.False(s.Registered)
	require.Equal(testTime.Add(time.Minute), s.ExpiresAt)

	s.Registered = true
	s.CallerName = "alice"
	s.Groups = []string{"admins"}
	s.Attributes["k"] = "v"
	require.NoError(store.Save(ctx, s))

	// returned sessions are copies
	s.Groups[0] = "changed"
	s.Attributes["k"] = "changed"

	got, err := store.Get(ctx, s.ID)
	require.NoError(err)
	require.True(got.Registered)
	require.Equal("alice", got.CallerName)
	require.Equal([]string{"admins"}, got.Groups)
	require.Equal("v", got.Attributes["k"])
	require.Equal(testTime, got.CreatedAt)

	require.NoError(store.Invalidate(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	require.ErrorIs(err, isession.ErrSessionNotFound)

	require.ErrorIs(store.Save(ctx, s), isession.ErrSessionNotFound)
	require.NoError(store.Invalidate(ctx, "unknown"))
}

func TestExpiration(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mockTime := coreutils.NewMockTime(testTime)
	store := Provide(time.Minute, mockTime)

	s, err := store.Create(ctx)
	require.NoError(err)

	t.Run("access prolongs the session", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			mockTime.Add(50 * time.Second)
			_, err := store.Get(ctx, s.ID)
			require.NoError(err)
		}
	})

	t.Run("idle session expires", func(t *testing.T) {
		mockTime.Add(time.Minute)
		_, err := store.Get(ctx, s.ID)
		require.ErrorIs(err, isession.ErrSessionNotFound)
	})
}

func TestDefaultTTL(t *testing.T) {
	require := require.New(t)
	s, err := Provide(0, coreutils.NewMockTime(testTime)).Create(context.Background())
	require.NoError(err)
	require.Equal(testTime.Add(DefaultSessionTTL), s.ExpiresAt)
}

func TestCookie(t *testing.T) {
	require := require.New(t)
	params := isession.DefaultCookieParams()

	w := httptest.NewRecorder()
	params.SetCookie(w, "id1")
	cookies := w.Result().Cookies()
	require.Len(cookies, 1)
	require.Equal(isession.DefaultCookieName, cookies[0].Name)
	require.True(cookies[0].HttpOnly)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(params.SessionID(r))
	r.AddCookie(cookies[0])
	require.Equal("id1", params.SessionID(r))

	w = httptest.NewRecorder()
	params.ExpireCookie(w)
	require.Equal(-1, w.Result().Cookies()[0].MaxAge)
}
