/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package itokensjwt

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isecrets"
)

type SecretKeyType []byte

type JWTSigner struct {
	secretKey []byte
	iTime     coreutils.ITime
}

type callerClaims struct {
	Groups   []string `json:"groups,omitempty"`
	Duration int64    `json:"dur"`
	jwt.RegisteredClaims
}

type testSecretReader struct {
	realSecretReader isecrets.ISecretReader
}
