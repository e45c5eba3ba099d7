/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rememberme

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/itokens"
)

// Store keeps remember-me login tokens in the bbolt database.
// Only keyed hashes of tokens are stored
type Store struct {
	db     *bolt.DB
	hasher itokens.ITokens
	iTime  coreutils.ITime
	ttl    time.Duration
}

type loginRecord struct {
	CallerName string    `json:"caller"`
	Groups     []string  `json:"groups,omitempty"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
