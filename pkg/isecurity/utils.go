/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurity

import (
	"context"

	"golang.org/x/exp/slices"
)

type securityContextKey struct{}

// PrincipalsByType returns principals of the subject which are of T type
func PrincipalsByType[T Principal](subject *Subject) (res []T) {
	if subject == nil {
		return nil
	}
	for _, p := range subject.Principals {
		if typed, ok := p.(T); ok {
			res = append(res, typed)
		}
	}
	return res
}

func NewValidResult(callerPrincipal Principal, groups []string) CredentialValidationResult {
	return CredentialValidationResult{
		Status:          ValidationStatus_Valid,
		CallerPrincipal: callerPrincipal,
		Groups:          groups,
	}
}

// WithSecurityContext returns the context which carries the security context of the request
func WithSecurityContext(ctx context.Context, sc ISecurityContext) context.Context {
	return context.WithValue(ctx, securityContextKey{}, sc)
}

// SecurityContextFrom returns nil if the request has not passed the security runtime
func SecurityContextFrom(ctx context.Context) ISecurityContext {
	sc, _ := ctx.Value(securityContextKey{}).(ISecurityContext)
	return sc
}

// Supports reports whether the store is configured for the validation type.
// Store with no validation types is considered as configured for both
func Supports(store IIdentityStore, vt ValidationType) bool {
	types := store.ValidationTypes()
	if len(types) == 0 {
		return true
	}
	return slices.Contains(types, vt)
}
