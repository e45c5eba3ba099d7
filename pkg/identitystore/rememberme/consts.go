/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package rememberme

import (
	"errors"
	"time"
)

const (
	DefaultTTL      = 14 * 24 * time.Hour
	loginsBucket    = "loginTokens"
	cleanupInterval = time.Hour
)

var ErrNoCallerPrincipal = errors.New("caller principal is not given")
