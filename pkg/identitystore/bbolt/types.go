/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/websecurity/pkg/identitystore"
	"github.com/voedger/websecurity/pkg/isecurity"
)

type Params struct {
	ID              string
	Priority        int
	ValidationTypes []isecurity.ValidationType

	// bcrypt cost, bcrypt.MinCost if zero
	HashCost int

	// Loaded callers cache size, DefaultCacheSize if zero
	CacheSize int
}

// Store keeps callers in the bbolt database
type Store struct {
	identitystore.StoreBase
	db       *bolt.DB
	hashCost int
	cache    *lru.Cache[string, callerRecord]
	// orders cache fills against changes
	mu sync.RWMutex
}

type callerRecord struct {
	PwdHash []byte   `json:"pwdHash"`
	Groups  []string `json:"groups,omitempty"`
}
