/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rememberme

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/voedger/websecurity/pkg/boltdb"
	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/itokens"
)

// Provide hasher keys hashes of tokens. Login token expires in ttl, DefaultTTL if zero
func Provide(db *bolt.DB, hasher itokens.ITokens, iTime coreutils.ITime, ttl time.Duration) (*Store, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := boltdb.InitBuckets(db, loginsBucket); err != nil {
		return nil, err
	}
	return &Store{db: db, hasher: hasher, iTime: iTime, ttl: ttl}, nil
}
