/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isecurity"
)

func (Base) SecureResponse(http.ResponseWriter, *http.Request, isecurity.IHTTPMessageContext) (isecurity.AuthenticationStatus, error) {
	return isecurity.AuthenticationStatus_Success, nil
}

func (Base) CleanSubject(_ http.ResponseWriter, _ *http.Request, mc isecurity.IHTTPMessageContext) {
	mc.CleanClientSubject()
}

func (m *basic) ValidateRequest(w http.ResponseWriter, r *http.Request, mc isecurity.IHTTPMessageContext) (isecurity.AuthenticationStatus, error) {
	encoded, ok := authorization(r, coreutils.BasicPrefix)
	if !ok {
		return m.challengeIfRequired(w, mc), nil
	}
	credential, err := isecurity.NewBasicAuthenticationCredential(encoded)
	if err != nil {
		if logger.IsVerbose() {
			logger.Verbose(err)
		}
		return m.challengeIfRequired(w, mc), nil
	}
	result, err := m.handler.Validate(r.Context(), credential)
	credential.Clear()
	if err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if result.IsValid() {
		return mc.NotifyContainerAboutLoginResult(result), nil
	}
	return m.challengeIfRequired(w, mc), nil
}

func (m *basic) challengeIfRequired(w http.ResponseWriter, mc isecurity.IHTTPMessageContext) isecurity.AuthenticationStatus {
	if !mc.IsProtected() && !mc.IsAuthenticationRequest() {
		return mc.DoNothing()
	}
	w.Header().Set(coreutils.WWWAuthenticate, fmt.Sprintf("Basic realm=%q", m.realm))
	return mc.ResponseUnauthorized()
}

func (m *bearer) ValidateRequest(w http.ResponseWriter, r *http.Request, mc isecurity.IHTTPMessageContext) (isecurity.AuthenticationStatus, error) {
	token, ok := authorization(r, coreutils.BearerPrefix)
	if !ok {
		if !mc.IsProtected() && !mc.IsAuthenticationRequest() {
			return mc.DoNothing(), nil
		}
		return m.challenge(w, mc, ""), nil
	}
	result, err := m.handler.Validate(r.Context(), isecurity.NewBearerTokenCredential(token))
	if err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if result.IsValid() {
		return mc.NotifyContainerAboutLoginResult(result), nil
	}
	// RFC 6750: the token is presented but not accepted
	return m.challenge(w, mc, "invalid_token"), nil
}

func (m *bearer) challenge(w http.ResponseWriter, mc isecurity.IHTTPMessageContext, errorCode string) isecurity.AuthenticationStatus {
	value := fmt.Sprintf("Bearer realm=%q", m.realm)
	if len(errorCode) > 0 {
		value += fmt.Sprintf(", error=%q", errorCode)
	}
	w.Header().Set(coreutils.WWWAuthenticate, value)
	return mc.ResponseUnauthorized()
}

// authorization returns the Authorization header value after the scheme, the scheme is case-insensitive
func authorization(r *http.Request, scheme string) (string, bool) {
	header := r.Header.Get(coreutils.Authorization)
	if len(header) <= len(scheme) || !strings.EqualFold(header[:len(scheme)], scheme) {
		return "", false
	}
	return strings.TrimSpace(header[len(scheme):]), true
}

func realmOrDefault(realm string) string {
	if len(realm) == 0 {
		return DefaultRealm
	}
	return realm
}
