/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/identitystore"
	"github.com/voedger/websecurity/pkg/isecurity"
)

// AddCaller adds or replaces the caller
func (s *Store) AddCaller(name string, password string, groups ...string) error {
	if len(name) == 0 {
		return ErrCallerNameIsEmpty
	}
	hash, err := identitystore.HashPassword([]byte(password), s.hashCost)
	if err != nil {
		return err
	}
	s.put(name, hash, groups)
	return nil
}

func (s *Store) RemoveCaller(name string) {
	s.mu.Lock()
	delete(s.callers, identitystore.NormalizeCallerName(name))
	s.mu.Unlock()
}

func (s *Store) Validate(_ context.Context, credential isecurity.Credential) (isecurity.CredentialValidationResult, error) {
	upc, ok := identitystore.UsernamePassword(credential)
	if !ok {
		return isecurity.NotValidatedResult, nil
	}
	if !upc.IsValid() {
		return isecurity.InvalidResult, nil
	}
	name := identitystore.NormalizeCallerName(upc.Caller())
	c, found := s.caller(name)
	ok, err := identitystore.CheckPassword(c.pwdHash, upc.Password())
	if err != nil {
		return isecurity.InvalidResult, err
	}
	if !found || !ok {
		return isecurity.InvalidResult, nil
	}
	res := isecurity.NewValidResult(isecurity.NewCallerPrincipal(name), c.groups)
	res.IdentityStoreID = s.ID()
	return res, nil
}

func (s *Store) CallerGroups(_ context.Context, result isecurity.CredentialValidationResult) ([]string, error) {
	c, _ := s.caller(identitystore.NormalizeCallerName(result.CallerName()))
	return c.groups, nil
}

func (s *Store) addCallerConfig(c CallerConfig) error {
	switch {
	case len(c.Name) == 0:
		return ErrCallerNameIsEmpty
	case len(c.PasswordHash) > 0:
		s.put(c.Name, []byte(c.PasswordHash), c.Groups)
		return nil
	case len(c.Password) > 0:
		return s.AddCaller(c.Name, c.Password, c.Groups...)
	}
	return ErrNoPassword
}

func (s *Store) put(name string, hash []byte, groups []string) {
	s.mu.Lock()
	s.callers[identitystore.NormalizeCallerName(name)] = caller{pwdHash: hash, groups: slices.Clone(groups)}
	s.mu.Unlock()
}

// returned groups are copied
func (s *Store) caller(name string) (c caller, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok = s.callers[name]
	c.groups = slices.Clone(c.groups)
	return c, ok
}
