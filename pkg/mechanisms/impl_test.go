/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/websecurity/pkg/boltdb"
	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/identitystore"
	"github.com/voedger/websecurity/pkg/identitystore/mem"
	"github.com/voedger/websecurity/pkg/identitystore/rememberme"
	"github.com/voedger/websecurity/pkg/identitystore/token"
	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/isecurityimpl"
	"github.com/voedger/websecurity/pkg/isession"
	"github.com/voedger/websecurity/pkg/isessionmem"
	"github.com/voedger/websecurity/pkg/itokensjwt"
	"github.com/voedger/websecurity/pkg/webconstraints"
)

func callerName(r *http.Request) string {
	if p := isecurity.SecurityContextFrom(r.Context()).CallerPrincipal(); p != nil {
		return p.Name()
	}
	return "anonymous"
}

func provideHandler(t *testing.T) isecurity.IIdentityStoreHandler {
	s := mem.Provide(mem.Params{})
	require.NoError(t, s.AddCaller("alice", "pwd", "users"))
	return identitystore.ProvideHandler(s)
}

func newRuntime(t *testing.T, m isecurity.IHTTPAuthenticationMechanism) *isecurityimpl.Runtime {
	constraints, err := webconstraints.Provide(webconstraints.Config{
		Constraints: []webconstraints.SecurityConstraint{
			{URLPatterns: []string{"/app/*"}, Roles: []string{"users"}},
		},
	})
	require.NoError(t, err)
	rt := isecurityimpl.New(isecurityimpl.RuntimeParams{
		Mechanism:   m,
		Constraints: constraints,
		Sessions:    isessionmem.Provide(time.Minute, coreutils.NewITime()),
		Cookie:      isession.DefaultCookieParams(),
	})
	whoAmI := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, callerName(r))
	}
	text := func(s string) func(w http.ResponseWriter, r *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, s)
		}
	}
	rt.HandleFunc("/app/page", whoAmI)
	rt.HandleFunc("/public", whoAmI)
	rt.HandleFunc("/", text("home"))
	rt.HandleFunc("/login", text("login page"))
	rt.HandleFunc("/error", text("error page"))
	rt.HandleFunc("/custom-login", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		status := isecurity.SecurityContextFrom(r.Context()).Authenticate(w, r, isecurity.AuthenticationParameters{
			Credential: isecurity.NewUsernamePasswordCredential(q.Get("user"), q.Get("pwd")),
			RememberMe: q.Get("remember") == "1",
		})
		if status == isecurity.AuthenticationStatus_Success {
			fmt.Fprint(w, callerName(r))
		}
	})
	rt.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		rt.Logout(w, r)
		fmt.Fprint(w, "bye")
	})
	return rt
}

type testResponse struct {
	code    int
	body    string
	header  http.Header
	cookies []*http.Cookie
}

func (r testResponse) cookie(name string) *http.Cookie {
	for _, c := range r.cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func serve(t *testing.T, h http.Handler, r *http.Request, cookies ...*http.Cookie) testResponse {
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testResponse{code: resp.StatusCode, body: string(body), header: resp.Header, cookies: resp.Cookies()}
}

func get(t *testing.T, h http.Handler, target string, cookies ...*http.Cookie) testResponse {
	return serve(t, h, httptest.NewRequest(http.MethodGet, target, nil), cookies...)
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values, cookies ...*http.Cookie) testResponse {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set(coreutils.ContentType, "application/x-www-form-urlencoded")
	return serve(t, h, r, cookies...)
}

func withAuthorization(target string, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set(coreutils.Authorization, value)
	return r
}

func TestBasic(t *testing.T) {
	require := require.New(t)
	rt := newRuntime(t, Basic("test", provideHandler(t)))
	encode := func(s string) string {
		return coreutils.BasicPrefix + base64.StdEncoding.EncodeToString([]byte(s))
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp := serve(t, rt, withAuthorization("/app/page", encode("alice:pwd")))
		require.Equal(http.StatusOK, resp.code)
		require.Equal("alice", resp.body)

		resp = serve(t, rt, withAuthorization("/public", "basic "+base64.StdEncoding.EncodeToString([]byte("alice:pwd"))))
		require.Equal("alice", resp.body)
	})

	t.Run("challenge", func(t *testing.T) {
		for _, r := range []*http.Request{
			httptest.NewRequest(http.MethodGet, "/app/page", nil),
			withAuthorization("/app/page", encode("alice:wrong")),
			withAuthorization("/app/page", coreutils.BasicPrefix+"%%%"),
		} {
			resp := serve(t, rt, r)
			require.Equal(http.StatusUnauthorized, resp.code)
			require.Equal(`Basic realm="test"`, resp.header.Get(coreutils.WWWAuthenticate))
		}
	})

	t.Run("public resource is not challenged", func(t *testing.T) {
		resp := serve(t, rt, withAuthorization("/public", encode("alice:wrong")))
		require.Equal(http.StatusOK, resp.code)
		require.Equal("anonymous", resp.body)
		require.Empty(resp.header.Get(coreutils.WWWAuthenticate))
	})

	t.Run("default realm", func(t *testing.T) {
		resp := get(t, newRuntime(t, Basic("", provideHandler(t))), "/app/page")
		require.Equal(`Basic realm="websecurity"`, resp.header.Get(coreutils.WWWAuthenticate))
	})
}

func TestBearer(t *testing.T) {
	require := require.New(t)
	tokens := token.Provide(itokensjwt.ProvideITokens(itokensjwt.SecretKeyExample, coreutils.NewITime()), identitystore.Priority_Token)
	rt := newRuntime(t, Bearer("test", identitystore.ProvideHandler(tokens)))
	tok, err := tokens.IssueToken(isecurity.NewValidResult(isecurity.NewCallerPrincipal("alice"), []string{"users"}), time.Hour)
	require.NoError(err)

	resp := serve(t, rt, withAuthorization("/app/page", coreutils.BearerPrefix+tok))
	require.Equal(http.StatusOK, resp.code)
	require.Equal("alice", resp.body)

	resp = serve(t, rt, withAuthorization("/app/page", "bearer "+tok))
	require.Equal("alice", resp.body)

	resp = serve(t, rt, withAuthorization("/public", coreutils.BearerPrefix+"wrong"))
	require.Equal(http.StatusUnauthorized, resp.code)
	require.Equal(`Bearer realm="test", error="invalid_token"`, resp.header.Get(coreutils.WWWAuthenticate))

	resp = get(t, rt, "/app/page")
	require.Equal(http.StatusUnauthorized, resp.code)
	require.Equal(`Bearer realm="test"`, resp.header.Get(coreutils.WWWAuthenticate))

	resp = get(t, rt, "/public")
	require.Equal(http.StatusOK, resp.code)
	require.Equal("anonymous", resp.body)
}

func TestForm(t *testing.T) {
	require := require.New(t)
	rt := newRuntime(t, Form(FormParams{LoginPage: "/login", ErrorPage: "/error"}, provideHandler(t)))
	credentials := func(pwd string) url.Values {
		return url.Values{ParamUsername: {"alice"}, ParamPassword: {pwd}}
	}

	resp := get(t, rt, "/app/page")
	require.Equal(http.StatusOK, resp.code)
	require.Equal("login page", resp.body)
	loginSession := resp.cookie(isession.DefaultCookieName)
	require.NotNil(loginSession)

	t.Run("invalid credentials", func(t *testing.T) {
		resp := postForm(t, rt, SecurityCheckPath, credentials("wrong"), loginSession)
		require.Equal("error page", resp.body)
	})

	resp = postForm(t, rt, SecurityCheckPath, credentials("pwd"), loginSession)
	require.Equal(http.StatusFound, resp.code)
	require.Equal("/app/page", resp.header.Get(coreutils.Location))

	resp = get(t, rt, "/app/page", loginSession)
	require.Equal(http.StatusOK, resp.code)
	require.Equal("alice", resp.body)
	registered := resp.cookie(isession.DefaultCookieName)
	require.NotNil(registered)
	require.NotEqual(loginSession.Value, registered.Value)

	resp = get(t, rt, "/app/page", registered)
	require.Equal("alice", resp.body)

	t.Run("login without saved request", func(t *testing.T) {
		resp := postForm(t, rt, SecurityCheckPath, credentials("pwd"))
		require.Equal(http.StatusFound, resp.code)
		require.Equal(DefaultLandingPage, resp.header.Get(coreutils.Location))
		session := resp.cookie(isession.DefaultCookieName)
		require.NotNil(session)

		resp = get(t, rt, "/", session)
		require.Equal("home", resp.body)
		resp = get(t, rt, "/app/page", resp.cookie(isession.DefaultCookieName))
		require.Equal("alice", resp.body)
	})

	t.Run("no error page", func(t *testing.T) {
		rt := newRuntime(t, Form(FormParams{LoginPage: "/login"}, provideHandler(t)))
		resp := postForm(t, rt, SecurityCheckPath, credentials("wrong"))
		require.Equal(http.StatusUnauthorized, resp.code)
	})

	t.Run("redirect to login", func(t *testing.T) {
		rt := newRuntime(t, Form(FormParams{LoginPage: "/login", RedirectToLogin: true}, provideHandler(t)))
		resp := get(t, rt, "/app/page")
		require.Equal(http.StatusFound, resp.code)
		require.Equal("/login", resp.header.Get(coreutils.Location))
	})
}

func TestFormContinuation(t *testing.T) {
	require := require.New(t)
	constraints, err := webconstraints.Provide(webconstraints.Config{
		Constraints: []webconstraints.SecurityConstraint{
			{URLPatterns: []string{"/*"}, Roles: []string{webconstraints.RoleAnyAuthenticated}},
			{URLPatterns: []string{"/login"}},
		},
	})
	require.NoError(err)
	rt := isecurityimpl.New(isecurityimpl.RuntimeParams{
		Mechanism:   Form(FormParams{LoginPage: "/login"}, provideHandler(t)),
		Constraints: constraints,
		Sessions:    isessionmem.Provide(time.Minute, coreutils.NewITime()),
		Cookie:      isession.DefaultCookieParams(),
	})
	rt.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "login page")
	})

	resp := get(t, rt, "//evil.example/steal?x=1")
	require.Equal("login page", resp.body)
	session := resp.cookie(isession.DefaultCookieName)
	require.NotNil(session)

	resp = postForm(t, rt, SecurityCheckPath, url.Values{ParamUsername: {"alice"}, ParamPassword: {"pwd"}}, session)
	require.Equal(http.StatusFound, resp.code)
	require.Equal("/evil.example/steal?x=1", resp.header.Get(coreutils.Location))

	t.Run("continuation uri", func(t *testing.T) {
		for target, expected := range map[string]string{
			"/app/page":            "/app/page",
			"/app/page/":           "/app/page/",
			"/":                    "/",
			"//evil.example/x":     "/evil.example/x",
			"/app/../../evil?a=b":  "/evil?a=b",
			"/app/./page/..//x":    "/app/x",
			"/%2F%2Fevil.example/": "/%2F%2Fevil.example/",
		} {
			u, err := url.ParseRequestURI(target)
			require.NoError(err)
			require.Equal(expected, continuationURI(u), target)
		}
	})

	t.Run("local targets", func(t *testing.T) {
		require.True(isLocalTarget("/app/page"))
		require.True(isLocalTarget("/"))
		require.False(isLocalTarget("//evil.example"))
		require.False(isLocalTarget(`/\evil.example`))
		require.False(isLocalTarget("https://evil.example"))
		require.False(isLocalTarget(""))
	})
}

func TestCustomForm(t *testing.T) {
	require := require.New(t)
	rt := newRuntime(t, CustomForm(FormParams{LoginPage: "/login", ErrorPage: "/error"}, provideHandler(t)))

	t.Run("continue the saved request", func(t *testing.T) {
		resp := get(t, rt, "/app/page")
		require.Equal("login page", resp.body)
		session := resp.cookie(isession.DefaultCookieName)
		require.NotNil(session)

		resp = get(t, rt, "/custom-login?user=alice&pwd=pwd", session)
		require.Equal(http.StatusFound, resp.code)
		require.Equal("/app/page", resp.header.Get(coreutils.Location))

		resp = get(t, rt, "/app/page", session)
		require.Equal("alice", resp.body)
	})

	t.Run("login within the request", func(t *testing.T) {
		resp := get(t, rt, "/custom-login?user=alice&pwd=pwd")
		require.Equal(http.StatusOK, resp.code)
		require.Equal("alice", resp.body)
		session := resp.cookie(isession.DefaultCookieName)
		require.NotNil(session)

		resp = get(t, rt, "/app/page", session)
		require.Equal("alice", resp.body)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		resp := get(t, rt, "/custom-login?user=alice&pwd=wrong")
		require.Equal("error page", resp.body)
	})
}

func TestRememberMe(t *testing.T) {
	require := require.New(t)
	db, err := boltdb.Open(filepath.Join(t.TempDir(), "logins.db"))
	require.NoError(err)
	t.Cleanup(func() { require.NoError(db.Close()) })
	iTime := coreutils.NewITime()
	store, err := rememberme.Provide(db, itokensjwt.ProvideITokens(itokensjwt.SecretKeyExample, iTime), iTime, time.Hour)
	require.NoError(err)

	inner := CustomForm(FormParams{LoginPage: "/login"}, provideHandler(t))
	rt := newRuntime(t, RememberMe(inner, store, "", 0))

	t.Run("not asked to remember", func(t *testing.T) {
		resp := get(t, rt, "/custom-login?user=alice&pwd=pwd")
		require.Equal("alice", resp.body)
		require.Nil(resp.cookie(DefaultRememberMeCookieName))
	})

	resp := get(t, rt, "/custom-login?user=alice&pwd=pwd&remember=1")
	require.Equal("alice", resp.body)
	remembered := resp.cookie(DefaultRememberMeCookieName)
	require.NotNil(remembered)
	require.Equal(int(DefaultRememberMeMaxAge.Seconds()), remembered.MaxAge)
	require.Equal(rememberme.DefaultTTL, DefaultRememberMeMaxAge)
	require.True(remembered.HttpOnly)

	// no session cookie, the caller is authenticated by the login token
	resp = get(t, rt, "/app/page", remembered)
	require.Equal(http.StatusOK, resp.code)
	require.Equal("alice", resp.body)

	resp = get(t, rt, "/logout", remembered)
	require.Equal("bye", resp.body)
	require.Equal(-1, resp.cookie(DefaultRememberMeCookieName).MaxAge)

	resp = get(t, rt, "/app/page", remembered)
	require.Equal("login page", resp.body)
	require.Equal(-1, resp.cookie(DefaultRememberMeCookieName).MaxAge)
}

func TestRememberMeWithForm(t *testing.T) {
	require := require.New(t)
	db, err := boltdb.Open(filepath.Join(t.TempDir(), "logins.db"))
	require.NoError(err)
	t.Cleanup(func() { require.NoError(db.Close()) })
	iTime := coreutils.NewITime()
	store, err := rememberme.Provide(db, itokensjwt.ProvideITokens(itokensjwt.SecretKeyExample, iTime), iTime, time.Hour)
	require.NoError(err)
	rt := newRuntime(t, RememberMe(Form(FormParams{LoginPage: "/login"}, provideHandler(t)), store, "remember", time.Minute))

	resp := get(t, rt, "/app/page")
	session := resp.cookie(isession.DefaultCookieName)
	require.NotNil(session)

	resp = postForm(t, rt, SecurityCheckPath, url.Values{ParamUsername: {"alice"}, ParamPassword: {"pwd"}, ParamRememberMe: {"on"}}, session)
	require.Equal(http.StatusFound, resp.code)
	require.Nil(resp.cookie("remember"))

	// the login token is issued when the saved authentication is restored
	resp = get(t, rt, "/app/page", session)
	require.Equal("alice", resp.body)
	remembered := resp.cookie("remember")
	require.NotNil(remembered)
	require.Equal(60, remembered.MaxAge)

	resp = get(t, rt, "/app/page", remembered)
	require.Equal("alice", resp.body)
}
