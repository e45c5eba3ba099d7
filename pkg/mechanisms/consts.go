/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import "time"

const (
	DefaultRealm       = "websecurity"
	DefaultLandingPage = "/"

	// Form login posts j_username and j_password here
	SecurityCheckPath = "/j_security_check"
	ParamUsername     = "j_username"
	ParamPassword     = "j_password"

	// Login form field which asks to remember the caller, value "true" or "on"
	ParamRememberMe = "remember-me"

	DefaultRememberMeCookieName = "JREMEMBERMEID"
	DefaultRememberMeMaxAge     = 14 * 24 * time.Hour
)

// PropertyRememberMe is set to true in MessageInfo().Properties by a mechanism which restores
// the authentication the caller asked to remember
const PropertyRememberMe = "websecurity.rememberMe"

const (
	attrOriginalRequest = "websecurity.originalRequest"
	attrAuthentication  = "websecurity.authentication"
)
