/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import (
	"time"

	"github.com/voedger/websecurity/pkg/isecurity"
)

// Base is embedded by mechanisms which do nothing after the resource is served
type Base struct{}

type basic struct {
	Base
	realm   string
	handler isecurity.IIdentityStoreHandler
}

type bearer struct {
	Base
	realm   string
	handler isecurity.IIdentityStoreHandler
}

type FormParams struct {
	// Resource the caller is forwarded (redirected) to when the login is required
	LoginPage string

	// Resource the caller is forwarded to when the credentials are invalid, 401 if empty
	ErrorPage string

	// Caller is redirected here after the login if there is no saved request, DefaultLandingPage if empty
	LandingPage string

	// Redirect to LoginPage instead of forwarding
	RedirectToLogin bool
}

type form struct {
	Base
	params  FormParams
	handler isecurity.IIdentityStoreHandler

	// credentials are provided by the application through ISecurityContext.Authenticate()
	custom bool
}

// savedAuthentication is kept in the session between the login and the request which continues it
type savedAuthentication struct {
	Caller     string   `json:"caller"`
	Groups     []string `json:"groups,omitempty"`
	RememberMe bool     `json:"rememberMe,omitempty"`
}

type rememberMe struct {
	inner      isecurity.IHTTPAuthenticationMechanism
	store      isecurity.IRememberMeIdentityStore
	cookieName string
	maxAge     time.Duration
}
