/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/isession"
	"github.com/voedger/websecurity/pkg/webconstraints"
)

type RuntimeParams struct {
	// nil means nobody can be authenticated: protected resources respond 401
	Mechanism isecurity.IHTTPAuthenticationMechanism

	// nil means no constraints
	Constraints *webconstraints.Constraints

	// nil means no HTTP sessions: the login can not be remembered
	Sessions isession.IAuthSessionStore

	// nil means group names are role names
	RoleMapper isecurity.IRoleMapper

	Cookie isession.CookieParams
}

// Runtime serves registered handlers behind the security pipeline
type Runtime struct {
	params    RuntimeParams
	router    *mux.Router
	resources int
	handler   isecurity.ICallbackHandler
}

// GroupRoleMap maps groups to roles, groups which are not in the map are roles of the same name
type GroupRoleMap map[string][]string

type callbackHandler struct{}

// securityContext is created for each request
type securityContext struct {
	rt *Runtime

	mu              sync.RWMutex
	subject         isecurity.Subject
	callerPrincipal isecurity.Principal
	roles           []string

	// loaded or created during the request, nil if none
	session *isession.AuthSession
}

type httpMessageContext struct {
	rt                    *Runtime
	sc                    *securityContext
	messageInfo           *isecurity.MessageInfo
	clientSubject         *isecurity.Subject
	protected             bool
	authenticationRequest bool
	authParameters        isecurity.AuthenticationParameters

	registerSession    bool
	registerCallerName string
	registerGroups     []string

	callerPrincipal isecurity.Principal
	groups          []string
}

type httpSession struct {
	mc *httpMessageContext
}

// responseWriter tracks whether the status is sent
type responseWriter struct {
	http.ResponseWriter
	committed bool
}
