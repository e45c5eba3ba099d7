/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurity

import (
	"net/http"
	"strconv"

	"golang.org/x/exp/slices"
)

// AuthenticationStatus is the state of the authentication mechanism after it has been invoked
type AuthenticationStatus uint8

const (
	// The mechanism did nothing, the caller stays unauthenticated
	AuthenticationStatus_NotDone AuthenticationStatus = iota

	// The authentication dialog is in progress, the mechanism has already produced the response
	AuthenticationStatus_SendContinue

	// The caller has been authenticated, the identity becomes active after the mechanism returns
	AuthenticationStatus_Success

	// The authentication failed, the mechanism may have already produced the response
	AuthenticationStatus_SendFailure

	AuthenticationStatus_FakeLast
)

type ValidationStatus uint8

const (
	ValidationStatus_NotValidated ValidationStatus = iota
	ValidationStatus_Invalid
	ValidationStatus_Valid
	ValidationStatus_FakeLast
)

// ValidationType determines what an identity store is used for
type ValidationType uint8

const (
	// Store validates credentials
	ValidationType_Validate ValidationType = iota

	// Store provides groups of the caller validated elsewhere
	ValidationType_ProvideGroups
)

// Principal is a named entity held by a Subject
type Principal interface {
	Name() string
}

// CallerPrincipal is the container's representation of the caller
type CallerPrincipal struct {
	name string
}

func NewCallerPrincipal(name string) *CallerPrincipal {
	return &CallerPrincipal{name: name}
}

func (p *CallerPrincipal) Name() string { return p.name }

func (p *CallerPrincipal) String() string { return "CallerPrincipal{" + p.name + "}" }

type GroupPrincipal struct {
	name string
}

func NewGroupPrincipal(name string) *GroupPrincipal {
	return &GroupPrincipal{name: name}
}

func (p *GroupPrincipal) Name() string { return p.name }

// Subject is the set of principals and credentials of the entity being authenticated
type Subject struct {
	Principals         []Principal
	PublicCredentials  []interface{}
	PrivateCredentials []interface{}
}

// AuthenticationParameters are provided along with the programmatic authentication request
type AuthenticationParameters struct {
	// E.g. credentials collected by the application for continuing the authentication dialog
	Credential Credential

	// Forces a new authentication dialog even if one is in progress or the caller is already authenticated
	NewAuthentication bool

	// Asks the mechanism to remember the caller if it supports that
	RememberMe bool
}

// CredentialValidationResult is the result of the credential validation by an identity store
type CredentialValidationResult struct {
	Status          ValidationStatus
	CallerPrincipal Principal
	Groups          []string
	IdentityStoreID string
	CallerDN        string
	CallerUniqueID  string
}

var (
	InvalidResult      = CredentialValidationResult{Status: ValidationStatus_Invalid}
	NotValidatedResult = CredentialValidationResult{Status: ValidationStatus_NotValidated}
)

// MessageInfo holds the request and response of the message being processed plus the properties
// the mechanism and the runtime use to communicate
type MessageInfo struct {
	Request    *http.Request
	Response   http.ResponseWriter
	Properties map[string]interface{}
}

// Callback is handled by ICallbackHandler
type Callback interface {
	isCallback()
}

// CallerPrincipalCallback asks the runtime to place the caller principal to the Subject.
// Principal has priority over Name
type CallerPrincipalCallback struct {
	Subject   *Subject
	Principal Principal
	Name      string
}

// GroupPrincipalCallback asks the runtime to place the group principals to the Subject
type GroupPrincipalCallback struct {
	Subject *Subject
	Groups  []string
}

func (CallerPrincipalCallback) isCallback() {}
func (GroupPrincipalCallback) isCallback()  {}

func (s AuthenticationStatus) String() string {
	switch s {
	case AuthenticationStatus_NotDone:
		return "NOT_DONE"
	case AuthenticationStatus_SendContinue:
		return "SEND_CONTINUE"
	case AuthenticationStatus_Success:
		return "SUCCESS"
	case AuthenticationStatus_SendFailure:
		return "SEND_FAILURE"
	}
	return "AuthenticationStatus(" + strconv.Itoa(int(s)) + ")"
}

func (s ValidationStatus) String() string {
	switch s {
	case ValidationStatus_NotValidated:
		return "NOT_VALIDATED"
	case ValidationStatus_Invalid:
		return "INVALID"
	case ValidationStatus_Valid:
		return "VALID"
	}
	return "ValidationStatus(" + strconv.Itoa(int(s)) + ")"
}

func (r CredentialValidationResult) IsValid() bool {
	return r.Status == ValidationStatus_Valid
}

// CallerName is empty if there is no caller principal
func (r CredentialValidationResult) CallerName() string {
	if r.CallerPrincipal == nil {
		return ""
	}
	return r.CallerPrincipal.Name()
}

func (s *Subject) AddPrincipal(p Principal) {
	s.Principals = append(s.Principals, p)
}

func (s *Subject) HasPrincipal(p Principal) bool {
	return slices.Contains(s.Principals, p)
}

func (s *Subject) IsEmpty() bool {
	return len(s.Principals) == 0 && len(s.PublicCredentials) == 0 && len(s.PrivateCredentials) == 0
}

// Clear removes all principals and credentials from the Subject
func (s *Subject) Clear() {
	s.Principals = nil
	s.PublicCredentials = nil
	s.PrivateCredentials = nil
}

// Groups returns names of all group principals
func (s *Subject) Groups() (groups []string) {
	for _, p := range PrincipalsByType[*GroupPrincipal](s) {
		groups = append(groups, p.Name())
	}
	return groups
}
