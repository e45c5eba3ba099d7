/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isession

import (
	"errors"
	"net/http"
)

const (
	DefaultCookieName = "WSSESSIONID"
	defaultCookiePath = "/"
)

var ErrSessionNotFound = errors.New("session not found")

func DefaultCookieParams() CookieParams {
	return CookieParams{
		Name:     DefaultCookieName,
		Path:     defaultCookiePath,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionID returns empty string if there is no session cookie
func (p CookieParams) SessionID(r *http.Request) string {
	c, err := r.Cookie(p.name())
	if err != nil {
		return ""
	}
	return c.Value
}

func (p CookieParams) SetCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.name(),
		Value:    sessionID,
		Path:     p.path(),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	})
}

func (p CookieParams) ExpireCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.name(),
		Value:    "",
		Path:     p.path(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	})
}

func (p CookieParams) name() string {
	if len(p.Name) == 0 {
		return DefaultCookieName
	}
	return p.Name
}

func (p CookieParams) path() string {
	if len(p.Path) == 0 {
		return defaultCookiePath
	}
	return p.Path
}
