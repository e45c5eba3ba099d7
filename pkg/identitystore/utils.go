/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package identitystore

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/voedger/websecurity/pkg/isecurity"
)

// NormalizeCallerName makes visually identical names equal
func NormalizeCallerName(name string) string {
	return norm.NFKC.String(name)
}

// UsernamePassword false if the credential does not carry the caller name and the password
func UsernamePassword(credential isecurity.Credential) (*isecurity.UsernamePasswordCredential, bool) {
	switch c := credential.(type) {
	case *isecurity.UsernamePasswordCredential:
		return c, c != nil
	case *isecurity.BasicAuthenticationCredential:
		if c == nil {
			return nil, false
		}
		return c.UsernamePasswordCredential, c.UsernamePasswordCredential != nil
	}
	return nil, false
}

// HashPassword cost is bcrypt.MinCost if less than that
func HashPassword(password []byte, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// CheckPassword nil hash means unknown caller, the comparison is done anyway to keep the timing
func CheckPassword(hash []byte, password []byte) (ok bool, err error) {
	if hash == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, password)
		return false, nil
	}
	if err = bcrypt.CompareHashAndPassword(hash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("failed to compare password hash: %w", err)
	}
	return true, nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.MinCost)
