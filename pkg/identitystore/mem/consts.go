/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import "errors"

const DefaultID = "mem"

var (
	ErrCallerNameIsEmpty = errors.New("caller name is empty")
	ErrNoPassword        = errors.New("either password or password hash must be given")
)
