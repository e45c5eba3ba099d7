/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import (
	"time"

	"github.com/voedger/websecurity/pkg/isecurity"
)

// Basic is the RFC 7617 mechanism, DefaultRealm is used if realm is empty
func Basic(realm string, handler isecurity.IIdentityStoreHandler) isecurity.IHTTPAuthenticationMechanism {
	return &basic{realm: realmOrDefault(realm), handler: handler}
}

// Bearer validates `Authorization: Bearer <token>` as isecurity.BearerTokenCredential
func Bearer(realm string, handler isecurity.IIdentityStoreHandler) isecurity.IHTTPAuthenticationMechanism {
	return &bearer{realm: realmOrDefault(realm), handler: handler}
}

// Form is the login-to-continue dialog with the login form posted to SecurityCheckPath.
// Runtime must be provided with the sessions store
func Form(params FormParams, handler isecurity.IIdentityStoreHandler) isecurity.IHTTPAuthenticationMechanism {
	return &form{params: params, handler: handler}
}

// CustomForm is the same dialog as Form but the application collects the credentials
// and passes them by ISecurityContext.Authenticate()
func CustomForm(params FormParams, handler isecurity.IIdentityStoreHandler) isecurity.IHTTPAuthenticationMechanism {
	return &form{params: params, handler: handler, custom: true}
}

// RememberMe wraps the mechanism: the caller is authenticated by the cookie issued on the previous login.
// Defaults are used for empty cookieName and zero maxAge
func RememberMe(inner isecurity.IHTTPAuthenticationMechanism, store isecurity.IRememberMeIdentityStore,
	cookieName string, maxAge time.Duration) isecurity.IHTTPAuthenticationMechanism {
	if len(cookieName) == 0 {
		cookieName = DefaultRememberMeCookieName
	}
	if maxAge <= 0 {
		maxAge = DefaultRememberMeMaxAge
	}
	return &rememberMe{inner: inner, store: store, cookieName: cookieName, maxAge: maxAge}
}
