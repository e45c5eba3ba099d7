/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/isecurity"
)

// ValidateRequest login-to-continue:
//   - protected resource: the request is saved in the session, the caller gets the login page
//   - valid credentials: the authentication is saved in the session, the caller is redirected to the saved request
//   - next request: the saved authentication is restored and registered in the session
func (m *form) ValidateRequest(w http.ResponseWriter, r *http.Request, mc isecurity.IHTTPMessageContext) (isecurity.AuthenticationStatus, error) {
	session, err := mc.Session(false)
	if err != nil {
		// notest
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if session != nil {
		if saved, ok := session.Attribute(attrAuthentication); ok {
			return m.restore(mc, session, saved)
		}
	}
	if credential := m.credential(r, mc); credential != nil {
		return m.validate(r, mc, credential)
	}
	if mc.IsProtected() || mc.IsAuthenticationRequest() {
		return m.loginToContinue(r, mc)
	}
	return mc.DoNothing(), nil
}

func (m *form) credential(r *http.Request, mc isecurity.IHTTPMessageContext) isecurity.Credential {
	if m.custom {
		if mc.IsAuthenticationRequest() {
			return mc.AuthParameters().Credential
		}
		return nil
	}
	if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, SecurityCheckPath) {
		return isecurity.NewUsernamePasswordCredential(r.PostFormValue(ParamUsername), r.PostFormValue(ParamPassword))
	}
	return nil
}

func (m *form) validate(r *http.Request, mc isecurity.IHTTPMessageContext, credential isecurity.Credential) (isecurity.AuthenticationStatus, error) {
	result, err := m.handler.Validate(r.Context(), credential)
	credential.Clear()
	if err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if !result.IsValid() {
		if len(m.params.ErrorPage) == 0 {
			return mc.ResponseUnauthorized(), nil
		}
		mc.Forward(m.params.ErrorPage)
		return isecurity.AuthenticationStatus_SendFailure, nil
	}

	session, err := mc.Session(!m.custom)
	if err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	target, saved := "", false
	if session != nil {
		target, saved = session.Attribute(attrOriginalRequest)
	}
	if saved && !isLocalTarget(target) {
		logger.Warning(fmt.Sprintf("saved request %q is not a local path, the landing page is used", target))
		target, saved = "", false
	}
	if !saved {
		if m.custom {
			// nothing to continue, the caller is logged in by the current request
			mc.SetRegisterSession(result.CallerName(), result.Groups)
			return mc.NotifyContainerAboutLoginResult(result), nil
		}
		target = m.landingPage()
	}

	data, err := json.Marshal(savedAuthentication{
		Caller:     result.CallerName(),
		Groups:     result.Groups,
		RememberMe: rememberRequested(r, mc),
	})
	if err != nil {
		// notest
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if err := session.SetAttribute(attrAuthentication, string(data)); err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("caller %q is logged in, continue with %s", result.CallerName(), target))
	}
	return mc.Redirect(target), nil
}

func (m *form) restore(mc isecurity.IHTTPMessageContext, session isecurity.IHTTPSession, saved string) (isecurity.AuthenticationStatus, error) {
	if err := session.RemoveAttribute(attrAuthentication); err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if err := session.RemoveAttribute(attrOriginalRequest); err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	auth := savedAuthentication{}
	if err := json.Unmarshal([]byte(saved), &auth); err != nil || len(auth.Caller) == 0 {
		return isecurity.AuthenticationStatus_SendFailure, fmt.Errorf("%w: %q", ErrMalformedSavedAuthentication, saved)
	}
	if auth.RememberMe {
		mc.MessageInfo().Properties[PropertyRememberMe] = true
	}
	mc.SetRegisterSession(auth.Caller, auth.Groups)
	return mc.NotifyContainerAboutLogin(auth.Caller, auth.Groups), nil
}

func (m *form) loginToContinue(r *http.Request, mc isecurity.IHTTPMessageContext) (isecurity.AuthenticationStatus, error) {
	session, err := mc.Session(true)
	if err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if err := session.SetAttribute(attrOriginalRequest, continuationURI(r.URL)); err != nil {
		return isecurity.AuthenticationStatus_SendFailure, err
	}
	if m.params.RedirectToLogin {
		return mc.Redirect(m.params.LoginPage), nil
	}
	return mc.Forward(m.params.LoginPage), nil
}

func (m *form) landingPage() string {
	if len(m.params.LandingPage) == 0 {
		return DefaultLandingPage
	}
	return m.params.LandingPage
}

// continuationURI is the cleaned local path of the request with its query
func continuationURI(u *url.URL) string {
	escaped := u.EscapedPath()
	res := path.Clean("/" + escaped)
	if strings.HasSuffix(escaped, "/") && res != "/" {
		res += "/"
	}
	if len(u.RawQuery) > 0 {
		res += "?" + u.RawQuery
	}
	return res
}

// isLocalTarget the target must be a path of this host: browsers treat "//" and "/\" as a host
func isLocalTarget(target string) bool {
	if !strings.HasPrefix(target, "/") {
		return false
	}
	return !strings.HasPrefix(target, "//") && !strings.HasPrefix(target, "/\\")
}
