/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rememberme

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/isecurity"
)

func (s *Store) GenerateLoginToken(_ context.Context, callerPrincipal isecurity.Principal, groups []string) (token string, err error) {
	if callerPrincipal == nil || len(callerPrincipal.Name()) == 0 {
		return "", ErrNoCallerPrincipal
	}
	token = uuid.NewString()
	rec := loginRecord{
		CallerName: callerPrincipal.Name(),
		Groups:     slices.Clone(groups),
		ExpiresAt:  s.iTime.Now().Add(s.ttl),
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		// notest
		return "", err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(loginsBucket)).Put(s.key(token), data)
	})
	if err != nil {
		return "", fmt.Errorf("failed to store login token: %w", err)
	}
	if logger.IsVerbose() {
		logger.Verbose("login token generated for", rec.CallerName)
	}
	return token, nil
}

func (s *Store) RemoveLoginToken(_ context.Context, token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(loginsBucket)).Delete(s.key(token))
	})
}

func (s *Store) Validate(ctx context.Context, credential *isecurity.RememberMeCredential) (isecurity.CredentialValidationResult, error) {
	if credential == nil || !credential.IsValid() {
		return isecurity.InvalidResult, nil
	}
	rec := loginRecord{}
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(loginsBucket)).Get(s.key(credential.Token()))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return isecurity.InvalidResult, fmt.Errorf("failed to read login token: %w", err)
	}
	if !found {
		return isecurity.InvalidResult, nil
	}
	if !s.iTime.Now().Before(rec.ExpiresAt) {
		return isecurity.InvalidResult, s.RemoveLoginToken(ctx, credential.Token())
	}
	return isecurity.NewValidResult(isecurity.NewCallerPrincipal(rec.CallerName), rec.Groups), nil
}

// CleanupExpired removes expired login tokens
func (s *Store) CleanupExpired() (removed int, err error) {
	now := s.iTime.Now()
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(loginsBucket))
		var expired [][]byte
		if err := bucket.ForEach(func(k, v []byte) error {
			rec := loginRecord{}
			if err := json.Unmarshal(v, &rec); err != nil || !now.Before(rec.ExpiresAt) {
				expired = append(expired, slices.Clone(k))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, k := range expired {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		removed = len(expired)
		return nil
	})
	return removed, err
}

func (s *Store) Prepare() error {
	return nil
}

// Run removes expired tokens periodically until ctx is done
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.CleanupExpired()
			if err != nil {
				logger.Error("failed to cleanup login tokens:", err)
				continue
			}
			if removed > 0 {
				logger.Info("expired login tokens removed:", removed)
			}
		}
	}
}

func (s *Store) key(token string) []byte {
	hash := s.hasher.CryptoHash256([]byte(token))
	return []byte(hex.EncodeToString(hash[:]))
}
