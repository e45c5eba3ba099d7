/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurity

import "errors"

var (
	ErrMalformedBasicCredential = errors.New("malformed basic authentication credential")
	ErrUnsupportedCallback      = errors.New("unsupported callback")
	ErrNoSubject                = errors.New("callback has no subject")
)
