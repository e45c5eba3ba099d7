/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import (
	"net/http"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/isession"
	"github.com/voedger/websecurity/pkg/webconstraints"
)

func newSecurityContext(rt *Runtime) *securityContext {
	return &securityContext{rt: rt}
}

func (sc *securityContext) CallerPrincipal() isecurity.Principal {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.callerPrincipal
}

func (sc *securityContext) CallerSubject() *isecurity.Subject {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return &isecurity.Subject{
		Principals:         slices.Clone(sc.subject.Principals),
		PublicCredentials:  slices.Clone(sc.subject.PublicCredentials),
		PrivateCredentials: slices.Clone(sc.subject.PrivateCredentials),
	}
}

func (sc *securityContext) IsCallerInRole(role string) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	if sc.callerPrincipal == nil {
		return false
	}
	if role == webconstraints.RoleAnyAuthenticated {
		return !slices.Contains(sc.rt.params.Constraints.DeclaredRoles(), role) || slices.Contains(sc.roles, role)
	}
	return slices.Contains(sc.roles, role)
}

func (sc *securityContext) HasAccessToWebResource(resource string, methods ...string) bool {
	if sc.rt.resources == 0 {
		return false
	}
	spec, err := webconstraints.ParseURLPatternSpec(resource)
	if err != nil {
		logger.Warning("wrong web resource:", err)
		return false
	}
	if len(methods) == 0 {
		methods = []string{webconstraints.DefaultMethod}
	}
	authenticated := sc.isAuthenticated()
	for _, method := range methods {
		if sc.rt.params.Constraints.CheckSpec(spec, method).Permits(authenticated, sc.IsCallerInRole) {
			return true
		}
	}
	return false
}

func (sc *securityContext) Authenticate(w http.ResponseWriter, r *http.Request, params isecurity.AuthenticationParameters) isecurity.AuthenticationStatus {
	if params.NewAuthentication {
		sc.clear()
		sc.rt.unregisterSession(r.Context(), sc)
	}
	decision := sc.rt.params.Constraints.Check(r.URL.Path, r.Method)
	mc := newMessageContext(sc.rt, sc, w, r, decision.Protected, true, params)
	return sc.rt.authenticate(mc)
}

func (sc *securityContext) isAuthenticated() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.callerPrincipal != nil
}

// setCaller takes the caller principal and groups from the subject.
// The caller is anonymous if there is no principal in the subject
func (sc *securityContext) setCaller(subject *isecurity.Subject) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.subject = isecurity.Subject{
		Principals:         slices.Clone(subject.Principals),
		PublicCredentials:  slices.Clone(subject.PublicCredentials),
		PrivateCredentials: slices.Clone(subject.PrivateCredentials),
	}
	sc.callerPrincipal = nil
	sc.roles = nil
	callers := isecurity.PrincipalsByType[*isecurity.CallerPrincipal](subject)
	if len(callers) == 0 {
		return
	}
	sc.callerPrincipal = callers[0]
	sc.roles = sc.rt.params.RoleMapper.Roles(subject.Groups())
}

func (sc *securityContext) clear() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.subject.Clear()
	sc.callerPrincipal = nil
	sc.roles = nil
}

func (sc *securityContext) currentSession() *isession.AuthSession {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.session
}

func (sc *securityContext) setSession(session *isession.AuthSession) {
	sc.mu.Lock()
	sc.session = session
	sc.mu.Unlock()
}
