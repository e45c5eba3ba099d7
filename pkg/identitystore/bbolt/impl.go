/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"
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
	return s.update(identitystore.NormalizeCallerName(name), func(rec *callerRecord, _ bool) error {
		rec.PwdHash = hash
		rec.Groups = slices.Clone(groups)
		return nil
	})
}

// SetGroups ErrCallerNotFound if there is no such caller
func (s *Store) SetGroups(name string, groups ...string) error {
	return s.update(identitystore.NormalizeCallerName(name), func(rec *callerRecord, exists bool) error {
		if !exists {
			return fmt.Errorf("%w: %s", ErrCallerNotFound, name)
		}
		rec.Groups = slices.Clone(groups)
		return nil
	})
}

// RemoveCaller no error if there is no such caller
func (s *Store) RemoveCaller(name string) error {
	name = identitystore.NormalizeCallerName(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(callersBucket)).Delete([]byte(name))
	})
	s.cache.Remove(name)
	return err
}

// Callers returns names of all callers in the key order
func (s *Store) Callers() (names []string, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(callersBucket)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
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
	rec, found, err := s.get(name)
	if err != nil {
		return isecurity.InvalidResult, err
	}
	ok, err = identitystore.CheckPassword(rec.PwdHash, upc.Password())
	if err != nil {
		return isecurity.InvalidResult, err
	}
	if !found || !ok {
		return isecurity.InvalidResult, nil
	}
	res := isecurity.NewValidResult(isecurity.NewCallerPrincipal(name), rec.Groups)
	res.IdentityStoreID = s.ID()
	return res, nil
}

func (s *Store) CallerGroups(_ context.Context, result isecurity.CredentialValidationResult) ([]string, error) {
	rec, _, err := s.get(identitystore.NormalizeCallerName(result.CallerName()))
	return rec.Groups, err
}

// returned record is the copy
func (s *Store) get(name string) (rec callerRecord, found bool, err error) {
	if rec, found = s.cache.Get(name); found {
		rec.Groups = slices.Clone(rec.Groups)
		return rec, true, nil
	}
	// the cache is filled under the read lock so that a concurrent change can not be overwritten by the stale record
	s.mu.RLock()
	defer s.mu.RUnlock()
	err = s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(callersBucket)).Get([]byte(name))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return callerRecord{}, false, fmt.Errorf("failed to read caller %s: %w", name, err)
	}
	if found {
		s.cache.Add(name, rec)
		rec.Groups = slices.Clone(rec.Groups)
	}
	return rec, found, nil
}

// update the cached record is evicted after the commit
func (s *Store) update(name string, cb func(rec *callerRecord, exists bool) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(callersBucket))
		rec := callerRecord{}
		data := bucket.Get([]byte(name))
		if data != nil {
			if err := json.Unmarshal(data, &rec); err != nil {
				return err
			}
		}
		if err := cb(&rec, data != nil); err != nil {
			return err
		}
		data, err := json.Marshal(&rec)
		if err != nil {
			// notest
			return err
		}
		return bucket.Put([]byte(name), data)
	})
	s.cache.Remove(name)
	if err == nil && logger.IsVerbose() {
		logger.Verbose("caller updated:", name)
	}
	return err
}
