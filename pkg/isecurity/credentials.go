/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurity

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
)

// Credential is what the caller presents to prove its identity
type Credential interface {
	// Credential has been cleared and can not be used anymore
	IsCleared() bool

	// Clear wipes out the secret part of the credential
	Clear()

	// IsValid checks the form of the credential, not its correctness
	IsValid() bool
}

type UsernamePasswordCredential struct {
	caller   string
	password []byte
	cleared  bool
}

func NewUsernamePasswordCredential(caller string, password string) *UsernamePasswordCredential {
	return &UsernamePasswordCredential{caller: caller, password: []byte(password)}
}

func (c *UsernamePasswordCredential) Caller() string { return c.caller }

func (c *UsernamePasswordCredential) Password() []byte { return c.password }

func (c *UsernamePasswordCredential) PasswordAsString() string { return string(c.password) }

func (c *UsernamePasswordCredential) IsCleared() bool { return c.cleared }

func (c *UsernamePasswordCredential) Clear() {
	for i := range c.password {
		c.password[i] = 0
	}
	c.password = nil
	c.cleared = true
}

func (c *UsernamePasswordCredential) IsValid() bool {
	return !c.cleared && len(c.caller) > 0
}

// CompareTo compares in constant time against the password
func (c *UsernamePasswordCredential) CompareTo(caller string, password string) bool {
	return c.caller == caller && subtle.ConstantTimeCompare(c.password, []byte(password)) == 1
}

// BasicAuthenticationCredential is the UsernamePasswordCredential decoded from the RFC 7617 token
type BasicAuthenticationCredential struct {
	*UsernamePasswordCredential
}

// NewBasicAuthenticationCredential decodes base64(user-id ":" password).
// ErrMalformedBasicCredential is returned if the token can not be decoded
func NewBasicAuthenticationCredential(encoded string) (*BasicAuthenticationCredential, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBasicCredential, err)
	}
	caller, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return nil, fmt.Errorf("%w: colon expected", ErrMalformedBasicCredential)
	}
	return &BasicAuthenticationCredential{NewUsernamePasswordCredential(caller, password)}, nil
}

// CallerOnlyCredential names the caller which has been authenticated elsewhere
type CallerOnlyCredential struct {
	caller  string
	cleared bool
}

func NewCallerOnlyCredential(caller string) *CallerOnlyCredential {
	return &CallerOnlyCredential{caller: caller}
}

func (c *CallerOnlyCredential) Caller() string  { return c.caller }
func (c *CallerOnlyCredential) IsCleared() bool { return c.cleared }
func (c *CallerOnlyCredential) Clear()          { c.cleared = true }
func (c *CallerOnlyCredential) IsValid() bool   { return !c.cleared && len(c.caller) > 0 }

// BearerTokenCredential is the token taken from the `Authorization: Bearer` header
type BearerTokenCredential struct {
	token string
}

func NewBearerTokenCredential(token string) *BearerTokenCredential {
	return &BearerTokenCredential{token: token}
}

func (c *BearerTokenCredential) Token() string   { return c.token }
func (c *BearerTokenCredential) IsCleared() bool { return len(c.token) == 0 }
func (c *BearerTokenCredential) Clear()          { c.token = "" }
func (c *BearerTokenCredential) IsValid() bool   { return len(c.token) > 0 }

// RememberMeCredential is the login token taken from the remember-me cookie
type RememberMeCredential struct {
	token string
}

func NewRememberMeCredential(token string) *RememberMeCredential {
	return &RememberMeCredential{token: token}
}

func (c *RememberMeCredential) Token() string   { return c.token }
func (c *RememberMeCredential) IsCleared() bool { return len(c.token) == 0 }
func (c *RememberMeCredential) Clear()          { c.token = "" }
func (c *RememberMeCredential) IsValid() bool   { return len(c.token) > 0 }
