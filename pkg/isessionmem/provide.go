/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isessionmem

import (
	"time"

	"github.com/erni27/imcache"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isession"
)

// Provide returns in-memory sessions store. Session expires if it is not accessed during ttl
func Provide(ttl time.Duration, iTime coreutils.ITime) isession.IAuthSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessions{
		cache: imcache.New[string, isession.AuthSession](),
		ttl:   ttl,
		iTime: iTime,
	}
}
