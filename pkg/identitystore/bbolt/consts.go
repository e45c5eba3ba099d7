/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package bbolt

import "errors"

const (
	DefaultID        = "bbolt"
	DefaultCacheSize = 1024
	callersBucket    = "callers"
)

var (
	ErrCallerNameIsEmpty = errors.New("caller name is empty")
	ErrCallerNotFound    = errors.New("caller not found")
)
