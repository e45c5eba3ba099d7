/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/isession"
)

func (rt *Runtime) Handle(path string, handler http.Handler) *mux.Route {
	rt.resources++
	return rt.router.Handle(path, handler)
}

func (rt *Runtime) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	rt.resources++
	return rt.router.HandleFunc(path, f)
}

func (rt *Runtime) HandlePrefix(prefix string, handler http.Handler) *mux.Route {
	rt.resources++
	return rt.router.PathPrefix(prefix).Handler(handler)
}

func (rt *Runtime) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := asResponseWriter(w)
	sc := newSecurityContext(rt)
	r = r.WithContext(isecurity.WithSecurityContext(r.Context(), sc))
	rt.loadSession(r, sc)

	decision := rt.params.Constraints.Check(r.URL.Path, r.Method)
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s %s: %s", r.Method, r.URL.Path, decision))
	}
	if decision.Excluded {
		coreutils.ReplyForbidden(rw, "access to the resource is denied")
		return
	}

	var mc *httpMessageContext
	if session := sc.currentSession(); session != nil && session.Registered {
		rt.restoreRegistered(sc, session)
	} else {
		mc = newMessageContext(rt, sc, rw, r, decision.Protected, false, isecurity.AuthenticationParameters{})
		switch rt.authenticate(mc) {
		case isecurity.AuthenticationStatus_SendContinue:
			return
		case isecurity.AuthenticationStatus_SendFailure:
			mc.ResponseUnauthorized()
			return
		}
		r = mc.Request()
		rw = asResponseWriter(mc.Response())
	}

	if authenticated := sc.isAuthenticated(); !decision.Permits(authenticated, sc.IsCallerInRole) {
		if authenticated {
			coreutils.ReplyForbidden(rw, "caller is not in the required role")
		} else {
			coreutils.ReplyUnauthorized(rw, "authentication required")
		}
		return
	}

	rt.router.ServeHTTP(rw, r)

	if mc != nil && rt.params.Mechanism != nil {
		if _, err := rt.params.Mechanism.SecureResponse(rw, r, mc); err != nil {
			logger.Error("failed to secure response:", err)
		}
	}
}

// Logout cleans the caller identity, invalidates the HTTP session and expires the session cookie.
// Must be called before the response is written
func (rt *Runtime) Logout(w http.ResponseWriter, r *http.Request) {
	sc, ok := isecurity.SecurityContextFrom(r.Context()).(*securityContext)
	if !ok {
		sc = newSecurityContext(rt)
		rt.loadSession(r, sc)
	}
	if rt.params.Mechanism != nil {
		mc := newMessageContext(rt, sc, w, r, false, false, isecurity.AuthenticationParameters{})
		mc.clientSubject = sc.CallerSubject()
		rt.params.Mechanism.CleanSubject(mc.Response(), r, mc)
	}
	sc.clear()
	if session := sc.currentSession(); session != nil {
		if err := rt.params.Sessions.Invalidate(r.Context(), session.ID); err != nil {
			logger.Error("failed to invalidate session:", err)
		}
		sc.setSession(nil)
	}
	if !IsCommitted(w) {
		rt.params.Cookie.ExpireCookie(w)
	}
}

// authenticate invokes the mechanism, the identity becomes active on success
func (rt *Runtime) authenticate(mc *httpMessageContext) isecurity.AuthenticationStatus {
	if rt.params.Mechanism == nil {
		return isecurity.AuthenticationStatus_NotDone
	}
	status, err := rt.params.Mechanism.ValidateRequest(mc.Response(), mc.Request(), mc)
	if err != nil {
		logger.Error("authentication mechanism failed:", err)
		if !IsCommitted(mc.Response()) {
			coreutils.ReplyErr(mc.Response(), err, http.StatusInternalServerError)
		}
		return isecurity.AuthenticationStatus_SendFailure
	}
	if logger.IsVerbose() {
		logger.Verbose("authentication status:", status)
	}
	if status != isecurity.AuthenticationStatus_Success {
		return status
	}
	mc.sc.setCaller(mc.clientSubject)
	if !mc.sc.isAuthenticated() {
		logger.Warning("mechanism succeeded but there is no caller principal, the caller stays anonymous")
		return status
	}
	if mc.IsRegisterSession() {
		if err := rt.registerSession(mc); err != nil {
			logger.Error("failed to register session:", err)
		}
	}
	return status
}

// registerSession the session id is changed on login
func (rt *Runtime) registerSession(mc *httpMessageContext) error {
	if rt.params.Sessions == nil {
		return ErrNoSessions
	}
	// the cookie could not be sent, the current session is kept as is
	if IsCommitted(mc.Response()) {
		return ErrResponseCommitted
	}
	ctx := mc.Request().Context()
	session, err := rt.params.Sessions.Create(ctx)
	if err != nil {
		return err
	}
	old := mc.sc.currentSession()
	if old != nil {
		session.Attributes = maps.Clone(old.Attributes)
	}
	session.Registered = true
	session.CallerName = mc.registerCallerName
	if len(session.CallerName) == 0 {
		session.CallerName = mc.sc.CallerPrincipal().Name()
	}
	session.Groups = slices.Clone(mc.registerGroups)
	if session.Groups == nil {
		session.Groups = mc.sc.CallerSubject().Groups()
	}
	if err := rt.params.Sessions.Save(ctx, session); err != nil {
		return err
	}
	if old != nil {
		if err := rt.params.Sessions.Invalidate(ctx, old.ID); err != nil {
			return err
		}
	}
	mc.sc.setSession(&session)
	rt.params.Cookie.SetCookie(mc.Response(), session.ID)
	if logger.IsVerbose() {
		logger.Verbose("session registered for", session.CallerName)
	}
	return nil
}

func (rt *Runtime) unregisterSession(ctx context.Context, sc *securityContext) {
	session := sc.currentSession()
	if session == nil || !session.Registered {
		return
	}
	s := session.Clone()
	s.Registered = false
	s.CallerName = ""
	s.Groups = nil
	if err := rt.params.Sessions.Save(ctx, s); err != nil {
		logger.Error("failed to unregister session:", err)
		return
	}
	sc.setSession(&s)
}

func (rt *Runtime) restoreRegistered(sc *securityContext, session *isession.AuthSession) {
	subject := &isecurity.Subject{}
	err := rt.handler.Handle(
		isecurity.CallerPrincipalCallback{Subject: subject, Name: session.CallerName},
		isecurity.GroupPrincipalCallback{Subject: subject, Groups: session.Groups},
	)
	if err != nil {
		// notest
		logger.Error("failed to restore registered caller:", err)
		return
	}
	sc.setCaller(subject)
}

func (rt *Runtime) loadSession(r *http.Request, sc *securityContext) {
	if rt.params.Sessions == nil {
		return
	}
	id := rt.params.Cookie.SessionID(r)
	if len(id) == 0 {
		return
	}
	session, err := rt.params.Sessions.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, isession.ErrSessionNotFound) {
			logger.Error("failed to load session:", err)
		}
		return
	}
	sc.setSession(&session)
}

func (m GroupRoleMap) Roles(groups []string) (roles []string) {
	for _, g := range groups {
		mapped, ok := m[g]
		if !ok {
			mapped = []string{g}
		}
		for _, role := range mapped {
			if !slices.Contains(roles, role) {
				roles = append(roles, role)
			}
		}
	}
	return roles
}
