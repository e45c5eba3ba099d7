/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurity

import (
	"context"
	"net/http"
)

// ISecurityContext is the access point for programmatic security.
// One per request, see SecurityContextFrom()
type ISecurityContext interface {
	// Principal of the authenticated caller or nil if the caller is not authenticated.
	// Can be type-asserted to the exact Principal type set by the mechanism (possibly via an identity store)
	CallerPrincipal() Principal

	// Subject of the caller, use PrincipalsByType() to query it.
	// Empty if the caller is not authenticated
	CallerSubject() *Subject

	// Checks whether the authenticated caller is included in the logical application role.
	// Always false if the caller is not authenticated
	IsCallerInRole(role string) bool

	// Checks whether the caller has access to the web resource using one of the methods, GET is assumed if no methods given.
	// resource is an URLPatternSpec: the url pattern optionally followed by ':'-separated excluded patterns.
	// Access is granted if the resource is not constrained or constrained by a role the caller is in.
	// false if there are no web resources at all in the application
	HasAccessToWebResource(resource string, methods ...string) bool

	// Programmatically triggers the authentication dialog: the runtime responds as if the caller
	// attempted to access a constrained resource and invokes the configured mechanism.
	// The dialog is continued if it is in progress, started otherwise. AuthenticationParameters.NewAuthentication forces the new one.
	// Returns the state of the mechanism after the call
	Authenticate(w http.ResponseWriter, r *http.Request, params AuthenticationParameters) AuthenticationStatus
}

// IHTTPMessageContext contains the per-request state passed to the authentication mechanism
type IHTTPMessageContext interface {
	// The requested resource is protected by a constraint
	IsProtected() bool

	// The mechanism is invoked because of ISecurityContext.Authenticate()
	IsAuthenticationRequest() bool

	// Runtime has been asked to register the authentication session during the current request
	IsRegisterSession() bool

	// Asks the runtime to remember the logged-in status as long as the HTTP session remains valid.
	// Otherwise the mechanism must re-authenticate the caller at the start of each request
	SetRegisterSession(callerName string, groups []string)

	// Clears the subject of this context
	CleanClientSubject()

	// Parameters provided with ISecurityContext.Authenticate() or zero-value parameters
	AuthParameters() AuthenticationParameters

	// Low level handler the runtime uses to receive the authentication details
	Handler() ICallbackHandler

	// Low level message info of the current request
	MessageInfo() *MessageInfo

	// Low level subject for which authentication is to take place
	ClientSubject() *Subject

	Request() *http.Request
	SetRequest(r *http.Request)
	// Fluent form of SetRequest
	WithRequest(r *http.Request) IHTTPMessageContext

	Response() http.ResponseWriter
	SetResponse(w http.ResponseWriter)

	// HTTP session of the request, nil if there is no session and create is false
	Session(create bool) (IHTTPSession, error)

	// Sets the 302 Found response, returns AuthenticationStatus_SendContinue
	Redirect(location string) AuthenticationStatus

	// Dispatches the request to another resource of the application, returns AuthenticationStatus_SendContinue
	Forward(path string) AuthenticationStatus

	// Sets the 401 response, returns AuthenticationStatus_SendFailure
	ResponseUnauthorized() AuthenticationStatus

	// Sets the 404 response, returns AuthenticationStatus_SendFailure
	ResponseNotFound() AuthenticationStatus

	// Asks the runtime to register the caller name and groups. The identity becomes active
	// after the mechanism returns control to the runtime, no errors should occur.
	// Returns AuthenticationStatus_Success
	NotifyContainerAboutLogin(callerName string, groups []string) AuthenticationStatus

	// Same as NotifyContainerAboutLogin but for the principal.
	// If the principal is not *CallerPrincipal the runtime adds its own *CallerPrincipal with the same name:
	// ISecurityContext.CallerPrincipal() returns the runtime one, the given one is accessible by PrincipalsByType()
	NotifyContainerAboutLoginPrincipal(principal Principal, groups []string) AuthenticationStatus

	// Passes the valid result of the identity store to the runtime and returns AuthenticationStatus_Success.
	// Returns AuthenticationStatus_SendFailure if the result is not valid
	NotifyContainerAboutLoginResult(result CredentialValidationResult) AuthenticationStatus

	// Returns AuthenticationStatus_NotDone
	DoNothing() AuthenticationStatus

	// Principal set by NotifyContainerAboutLogin*()
	CallerPrincipal() Principal

	// Groups set by NotifyContainerAboutLogin*()
	Groups() []string
}

// IHTTPSession is the server-side state which spans requests of the same client
type IHTTPSession interface {
	ID() string
	Attribute(name string) (value string, ok bool)
	SetAttribute(name string, value string) error
	RemoveAttribute(name string) error
}

// IHTTPAuthenticationMechanism is invoked by the runtime to perform the login
type IHTTPAuthenticationMechanism interface {
	// Called for every request before the resource is served, and on ISecurityContext.Authenticate()
	// error means the mechanism has failed, the runtime reports 500 unless the response is written already
	ValidateRequest(w http.ResponseWriter, r *http.Request, mc IHTTPMessageContext) (AuthenticationStatus, error)

	// Called after the resource has been served
	SecureResponse(w http.ResponseWriter, r *http.Request, mc IHTTPMessageContext) (AuthenticationStatus, error)

	// Called on logout
	CleanSubject(w http.ResponseWriter, r *http.Request, mc IHTTPMessageContext)
}

// ICallbackHandler is the low level channel from the mechanism to the runtime
type ICallbackHandler interface {
	// ErrUnsupportedCallback is returned for unknown callbacks
	Handle(callbacks ...Callback) error
}

// IIdentityStore validates credentials and provides groups of callers
type IIdentityStore interface {
	// NotValidatedResult is returned if the credential type is not supported
	Validate(ctx context.Context, credential Credential) (CredentialValidationResult, error)

	// Groups of the caller validated by another store
	CallerGroups(ctx context.Context, result CredentialValidationResult) ([]string, error)

	// Stores are consulted in the priority order, lower first
	Priority() int

	ValidationTypes() []ValidationType
}

// IIdentityStoreHandler validates credentials against all registered identity stores
type IIdentityStoreHandler interface {
	Validate(ctx context.Context, credential Credential) (CredentialValidationResult, error)
}

// IRememberMeIdentityStore issues and validates login tokens kept by the client between sessions
type IRememberMeIdentityStore interface {
	GenerateLoginToken(ctx context.Context, callerPrincipal Principal, groups []string) (token string, err error)
	RemoveLoginToken(ctx context.Context, token string) error
	Validate(ctx context.Context, credential *RememberMeCredential) (CredentialValidationResult, error)
}

// IRoleMapper maps caller groups to the logical application roles
type IRoleMapper interface {
	Roles(groups []string) []string
}
