/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import (
	"net/http"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/isecurity"
)

func (m *rememberMe) ValidateRequest(w http.ResponseWriter, r *http.Request, mc isecurity.IHTTPMessageContext) (isecurity.AuthenticationStatus, error) {
	newAuthentication := mc.IsAuthenticationRequest() && mc.AuthParameters().NewAuthentication
	if cookie, err := r.Cookie(m.cookieName); err == nil && len(cookie.Value) > 0 && !newAuthentication {
		result, err := m.store.Validate(r.Context(), isecurity.NewRememberMeCredential(cookie.Value))
		if err != nil {
			return isecurity.AuthenticationStatus_SendFailure, err
		}
		if result.IsValid() {
			return mc.NotifyContainerAboutLoginResult(result), nil
		}
		m.expireCookie(w)
	}

	status, err := m.inner.ValidateRequest(w, r, mc)
	if err != nil || status != isecurity.AuthenticationStatus_Success {
		return status, err
	}
	if mc.CallerPrincipal() == nil || !rememberRequested(r, mc) {
		return status, nil
	}
	token, err := m.store.GenerateLoginToken(r.Context(), mc.CallerPrincipal(), mc.Groups())
	if err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return status, nil
}

func (m *rememberMe) SecureResponse(w http.ResponseWriter, r *http.Request, mc isecurity.IHTTPMessageContext) (isecurity.AuthenticationStatus, error) {
	return m.inner.SecureResponse(w, r, mc)
}

func (m *rememberMe) CleanSubject(w http.ResponseWriter, r *http.Request, mc isecurity.IHTTPMessageContext) {
	if cookie, err := r.Cookie(m.cookieName); err == nil {
		if err := m.store.RemoveLoginToken(r.Context(), cookie.Value); err != nil {
			logger.Error("failed to remove login token:", err)
		}
		m.expireCookie(w)
	}
	m.inner.CleanSubject(w, r, mc)
}

func (m *rememberMe) expireCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: m.cookieName, Path: "/", MaxAge: -1, HttpOnly: true})
}

// rememberRequested by the application, the login form or the mechanism which restored the authentication
func rememberRequested(r *http.Request, mc isecurity.IHTTPMessageContext) bool {
	if mc.AuthParameters().RememberMe {
		return true
	}
	if v, ok := mc.MessageInfo().Properties[PropertyRememberMe].(bool); ok && v {
		return true
	}
	if r.Method != http.MethodPost {
		return false
	}
	switch r.PostFormValue(ParamRememberMe) {
	case "true", "on":
		return true
	}
	return false
}
