/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import "errors"

var (
	ErrNoSessions        = errors.New("HTTP sessions are not configured")
	ErrResponseCommitted = errors.New("response is committed already")
)
