/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package itokens

import (
	"errors"
	"time"
)

// ITokens issues and validates caller tokens
type ITokens interface {
	// ErrSignerError
	IssueToken(callerName string, groups []string, duration time.Duration) (token string, err error)

	// ErrInvalidToken, ErrTokenExpired
	ValidateToken(token string) (payload CallerPayload, err error)

	// Keyed hash of the data
	CryptoHash256(data []byte) [HashLength]byte
}

type CallerPayload struct {
	CallerName string
	Groups     []string
	IssuedAt   time.Time
	Duration   time.Duration
}

const HashLength = 32

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrSignerError  = errors.New("signer error")
)
