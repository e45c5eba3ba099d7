/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isession

import (
	"net/http"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AuthSession is the server-side state of the client
type AuthSession struct {
	ID string

	// The caller has been registered by the mechanism, see IHTTPMessageContext.SetRegisterSession()
	Registered bool
	CallerName string
	Groups     []string

	// Arbitrary attributes set by mechanisms, e.g. the saved request of the login-to-continue dialog
	Attributes map[string]string

	CreatedAt time.Time
	ExpiresAt time.Time
}

type CookieParams struct {
	Name     string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

func (s AuthSession) Clone() AuthSession {
	res := s
	res.Groups = slices.Clone(s.Groups)
	res.Attributes = maps.Clone(s.Attributes)
	return res
}

func (s AuthSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
