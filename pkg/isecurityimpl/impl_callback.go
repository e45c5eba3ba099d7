/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/isecurity"
)

func (h *callbackHandler) Handle(callbacks ...isecurity.Callback) error {
	for _, cb := range callbacks {
		switch c := cb.(type) {
		case isecurity.CallerPrincipalCallback:
			if err := handleCallerPrincipal(c); err != nil {
				return err
			}
		case *isecurity.CallerPrincipalCallback:
			if err := handleCallerPrincipal(*c); err != nil {
				return err
			}
		case isecurity.GroupPrincipalCallback:
			if err := handleGroupPrincipal(c); err != nil {
				return err
			}
		case *isecurity.GroupPrincipalCallback:
			if err := handleGroupPrincipal(*c); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T", isecurity.ErrUnsupportedCallback, cb)
		}
	}
	return nil
}

// the principal which is not *CallerPrincipal is accompanied by *CallerPrincipal of the same name
func handleCallerPrincipal(c isecurity.CallerPrincipalCallback) error {
	if c.Subject == nil {
		return isecurity.ErrNoSubject
	}
	principal := c.Principal
	if principal == nil {
		if len(c.Name) == 0 {
			return nil
		}
		principal = isecurity.NewCallerPrincipal(c.Name)
	}
	c.Subject.AddPrincipal(principal)
	if _, ok := principal.(*isecurity.CallerPrincipal); !ok {
		c.Subject.AddPrincipal(isecurity.NewCallerPrincipal(principal.Name()))
	}
	return nil
}

func handleGroupPrincipal(c isecurity.GroupPrincipalCallback) error {
	if c.Subject == nil {
		return isecurity.ErrNoSubject
	}
	existing := c.Subject.Groups()
	for _, g := range c.Groups {
		if !slices.Contains(existing, g) {
			c.Subject.AddPrincipal(isecurity.NewGroupPrincipal(g))
			existing = append(existing, g)
		}
	}
	return nil
}
