/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import (
	lru "github.com/hashicorp/golang-lru/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/websecurity/pkg/boltdb"
	"github.com/voedger/websecurity/pkg/identitystore"
)

// Provide the db is not closed by the store
func Provide(db *bolt.DB, params Params) (*Store, error) {
	if len(params.ID) == 0 {
		params.ID = DefaultID
	}
	if params.CacheSize <= 0 {
		params.CacheSize = DefaultCacheSize
	}
	if err := boltdb.InitBuckets(db, callersBucket); err != nil {
		return nil, err
	}
	cache, err := lru.New[string, callerRecord](params.CacheSize)
	if err != nil {
		// notest
		return nil, err
	}
	return &Store{
		StoreBase: identitystore.NewStoreBase(params.ID, params.Priority, params.ValidationTypes...),
		db:        db,
		hashCost:  params.HashCost,
		cache:     cache,
	}, nil
}
