/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package boltdb

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/websecurity/pkg/coreutils"
)

const openTimeout = 5 * time.Second

// Open opens the database file, creates it and the parent folders if not exist
func Open(fileName string) (*bolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(fileName), coreutils.FileMode_rwxrwxrwx); err != nil {
		// notest
		return nil, err
	}
	db, err := bolt.Open(fileName, coreutils.FileMode_rw_rw_rw_, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fileName, err)
	}
	logger.Info("database opened:", fileName)
	return db, nil
}

// InitBuckets creates the buckets if they do not exist
func InitBuckets(db *bolt.DB, names ...string) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range names {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}
