/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isessionmem

import (
	"context"
	"time"

	"github.com/erni27/imcache"
	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isession"
)

type sessions struct {
	cache *imcache.Cache[string, isession.AuthSession]
	ttl   time.Duration
	iTime coreutils.ITime
}

func (s *sessions) Create(context.Context) (isession.AuthSession, error) {
	now := s.iTime.Now()
	session := isession.AuthSession{
		ID:         uuid.NewString(),
		Attributes: map[string]string{},
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}
	s.put(session)
	if logger.IsVerbose() {
		logger.Verbose("session created:", session.ID)
	}
	return session.Clone(), nil
}

func (s *sessions) Get(_ context.Context, id string) (isession.AuthSession, error) {
	session, err := s.get(id)
	if err != nil {
		return session, err
	}
	session.ExpiresAt = s.iTime.Now().Add(s.ttl)
	s.put(session)
	return session.Clone(), nil
}

func (s *sessions) Save(_ context.Context, session isession.AuthSession) error {
	stored, err := s.get(session.ID)
	if err != nil {
		return err
	}
	session = session.Clone()
	session.CreatedAt = stored.CreatedAt
	session.ExpiresAt = s.iTime.Now().Add(s.ttl)
	s.put(session)
	return nil
}

func (s *sessions) Invalidate(_ context.Context, id string) error {
	if s.cache.Remove(id) && logger.IsVerbose() {
		logger.Verbose("session invalidated:", id)
	}
	return nil
}

func (s *sessions) get(id string) (isession.AuthSession, error) {
	session, ok := s.cache.Get(id)
	if !ok {
		return isession.AuthSession{}, isession.ErrSessionNotFound
	}
	if session.IsExpired(s.iTime.Now()) {
		s.cache.Remove(id)
		if logger.IsVerbose() {
			logger.Verbose("session expired:", id)
		}
		return isession.AuthSession{}, isession.ErrSessionNotFound
	}
	return session, nil
}

// imcache evicts by the wall clock, the session deadline is checked by iTime
func (s *sessions) put(session isession.AuthSession) {
	s.cache.Set(session.ID, session, imcache.WithSlidingExpiration(s.ttl))
}
