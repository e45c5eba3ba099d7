/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package token

import (
	"context"
	"errors"
	"time"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/identitystore"
	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/itokens"
)

const DefaultID = "token"

// Store validates bearer tokens issued by ITokens, groups are taken from the token
type Store struct {
	identitystore.StoreBase
	tokens itokens.ITokens
}

func Provide(tokens itokens.ITokens, priority int, validationTypes ...isecurity.ValidationType) *Store {
	return &Store{
		StoreBase: identitystore.NewStoreBase(DefaultID, priority, validationTypes...),
		tokens:    tokens,
	}
}

func (s *Store) Validate(_ context.Context, credential isecurity.Credential) (isecurity.CredentialValidationResult, error) {
	btc, ok := credential.(*isecurity.BearerTokenCredential)
	if !ok {
		return isecurity.NotValidatedResult, nil
	}
	if !btc.IsValid() {
		return isecurity.InvalidResult, nil
	}
	payload, err := s.tokens.ValidateToken(btc.Token())
	if err != nil {
		if errors.Is(err, itokens.ErrInvalidToken) || errors.Is(err, itokens.ErrTokenExpired) {
			if logger.IsVerbose() {
				logger.Verbose("bearer token rejected:", err)
			}
			return isecurity.InvalidResult, nil
		}
		return isecurity.InvalidResult, err
	}
	res := isecurity.NewValidResult(isecurity.NewCallerPrincipal(payload.CallerName), payload.Groups)
	res.IdentityStoreID = s.ID()
	return res, nil
}

// CallerGroups the token store knows nothing about callers validated by other stores
func (s *Store) CallerGroups(context.Context, isecurity.CredentialValidationResult) ([]string, error) {
	return nil, nil
}

// IssueToken for the caller validated by any store
func (s *Store) IssueToken(result isecurity.CredentialValidationResult, duration time.Duration) (string, error) {
	if !result.IsValid() {
		return "", ErrResultIsNotValid
	}
	return s.tokens.IssueToken(result.CallerName(), result.Groups, duration)
}

var ErrResultIsNotValid = errors.New("credential validation result is not valid")
