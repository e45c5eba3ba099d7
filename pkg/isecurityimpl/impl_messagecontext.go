/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import (
	"net/http"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isecurity"
)

func newMessageContext(rt *Runtime, sc *securityContext, w http.ResponseWriter, r *http.Request, protected bool,
	authenticationRequest bool, params isecurity.AuthenticationParameters) *httpMessageContext {
	return &httpMessageContext{
		rt: rt,
		sc: sc,
		messageInfo: &isecurity.MessageInfo{
			Request:  r,
			Response: asResponseWriter(w),
			Properties: map[string]interface{}{
				PropertyIsMandatory: protected,
				PropertyAuthRequest: authenticationRequest,
			},
		},
		clientSubject:         &isecurity.Subject{},
		protected:             protected,
		authenticationRequest: authenticationRequest,
		authParameters:        params,
	}
}

func (mc *httpMessageContext) IsProtected() bool {
	return mc.protected
}

func (mc *httpMessageContext) IsAuthenticationRequest() bool {
	return mc.authenticationRequest
}

func (mc *httpMessageContext) IsRegisterSession() bool {
	return mc.registerSession
}

func (mc *httpMessageContext) SetRegisterSession(callerName string, groups []string) {
	mc.registerSession = true
	mc.registerCallerName = callerName
	mc.registerGroups = slices.Clone(groups)
	mc.messageInfo.Properties[PropertyRegisterSession] = true
}

func (mc *httpMessageContext) CleanClientSubject() {
	mc.clientSubject.Clear()
	mc.callerPrincipal = nil
	mc.groups = nil
}

func (mc *httpMessageContext) AuthParameters() isecurity.AuthenticationParameters {
	return mc.authParameters
}

func (mc *httpMessageContext) Handler() isecurity.ICallbackHandler {
	return mc.rt.handler
}

func (mc *httpMessageContext) MessageInfo() *isecurity.MessageInfo {
	return mc.messageInfo
}

func (mc *httpMessageContext) ClientSubject() *isecurity.Subject {
	return mc.clientSubject
}

func (mc *httpMessageContext) Request() *http.Request {
	return mc.messageInfo.Request
}

func (mc *httpMessageContext) SetRequest(r *http.Request) {
	mc.messageInfo.Request = r
}

func (mc *httpMessageContext) WithRequest(r *http.Request) isecurity.IHTTPMessageContext {
	mc.SetRequest(r)
	return mc
}

func (mc *httpMessageContext) Response() http.ResponseWriter {
	return mc.messageInfo.Response
}

func (mc *httpMessageContext) SetResponse(w http.ResponseWriter) {
	mc.messageInfo.Response = asResponseWriter(w)
}

func (mc *httpMessageContext) Session(create bool) (isecurity.IHTTPSession, error) {
	if mc.sc.currentSession() != nil {
		return &httpSession{mc: mc}, nil
	}
	if !create {
		return nil, nil
	}
	if mc.rt.params.Sessions == nil {
		return nil, ErrNoSessions
	}
	if IsCommitted(mc.Response()) {
		return nil, ErrResponseCommitted
	}
	session, err := mc.rt.params.Sessions.Create(mc.Request().Context())
	if err != nil {
		return nil, err
	}
	mc.sc.setSession(&session)
	mc.rt.params.Cookie.SetCookie(mc.Response(), session.ID)
	return &httpSession{mc: mc}, nil
}

func (mc *httpMessageContext) Redirect(location string) isecurity.AuthenticationStatus {
	w := mc.Response()
	if !IsCommitted(w) {
		w.Header().Set(coreutils.Location, location)
		w.WriteHeader(http.StatusFound)
	}
	return isecurity.AuthenticationStatus_SendContinue
}

// Forward serves the path by the registered handlers without passing the security pipeline, the method is kept
func (mc *httpMessageContext) Forward(path string) isecurity.AuthenticationStatus {
	r := mc.Request().Clone(mc.Request().Context())
	r.URL.Path = path
	r.URL.RawPath = ""
	r.RequestURI = r.URL.RequestURI()
	if logger.IsVerbose() {
		logger.Verbose("forward to", path)
	}
	mc.rt.router.ServeHTTP(mc.Response(), r)
	return isecurity.AuthenticationStatus_SendContinue
}

func (mc *httpMessageContext) ResponseUnauthorized() isecurity.AuthenticationStatus {
	if w := mc.Response(); !IsCommitted(w) {
		coreutils.ReplyUnauthorized(w, http.StatusText(http.StatusUnauthorized))
	}
	return isecurity.AuthenticationStatus_SendFailure
}

func (mc *httpMessageContext) ResponseNotFound() isecurity.AuthenticationStatus {
	if w := mc.Response(); !IsCommitted(w) {
		coreutils.ReplyErr(w, coreutils.NewSysError(http.StatusNotFound), http.StatusNotFound)
	}
	return isecurity.AuthenticationStatus_SendFailure
}

func (mc *httpMessageContext) NotifyContainerAboutLogin(callerName string, groups []string) isecurity.AuthenticationStatus {
	var principal isecurity.Principal
	if len(callerName) > 0 {
		principal = isecurity.NewCallerPrincipal(callerName)
	}
	return mc.NotifyContainerAboutLoginPrincipal(principal, groups)
}

func (mc *httpMessageContext) NotifyContainerAboutLoginPrincipal(principal isecurity.Principal, groups []string) isecurity.AuthenticationStatus {
	mc.callerPrincipal = principal
	mc.groups = slices.Clone(groups)
	if principal == nil {
		// no caller, the subject stays anonymous
		return isecurity.AuthenticationStatus_Success
	}
	err := mc.Handler().Handle(
		isecurity.CallerPrincipalCallback{Subject: mc.clientSubject, Principal: principal},
		isecurity.GroupPrincipalCallback{Subject: mc.clientSubject, Groups: groups},
	)
	if err != nil {
		// notest
		logger.Error("failed to handle login callbacks:", err)
	}
	return isecurity.AuthenticationStatus_Success
}

func (mc *httpMessageContext) NotifyContainerAboutLoginResult(result isecurity.CredentialValidationResult) isecurity.AuthenticationStatus {
	if !result.IsValid() {
		return isecurity.AuthenticationStatus_SendFailure
	}
	return mc.NotifyContainerAboutLoginPrincipal(result.CallerPrincipal, result.Groups)
}

func (mc *httpMessageContext) DoNothing() isecurity.AuthenticationStatus {
	return isecurity.AuthenticationStatus_NotDone
}

func (mc *httpMessageContext) CallerPrincipal() isecurity.Principal {
	return mc.callerPrincipal
}

func (mc *httpMessageContext) Groups() []string {
	return mc.groups
}
