/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "errors"

var (
	ErrUnknownMechanism    = errors.New("unknown authentication mechanism")
	ErrSecretKeyIsTooShort = errors.New("JWT secret key is too short")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
