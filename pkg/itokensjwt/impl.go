/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package itokensjwt

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/itokens"
)

func NewJWTSigner(secretKey SecretKeyType, iTime coreutils.ITime) *JWTSigner {
	if len(secretKey) < SecretKeyLength {
		panic(fmt.Errorf("invalid key length: must be %d bytes", SecretKeyLength))
	}
	return &JWTSigner{secretKey: secretKey, iTime: iTime}
}

func (j *JWTSigner) IssueToken(callerName string, groups []string, duration time.Duration) (token string, err error) {
	now := j.iTime.Now()
	claims := &callerClaims{
		Groups:   groups,
		Duration: int64(duration),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   callerName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("cannot issue token: %w: %w", itokens.ErrSignerError, err)
	}
	return token, nil
}

func (j *JWTSigner) ValidateToken(token string) (payload itokens.CallerPayload, err error) {
	parser := jwt.NewParser(
		jwt.WithTimeFunc(j.iTime.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	claims := &callerClaims{}
	if _, err = parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}); err != nil {
		return payload, setErrorDescription(err)
	}
	if len(claims.Subject) == 0 || claims.ExpiresAt == nil {
		return payload, fmt.Errorf("%w: no subject or expiration", itokens.ErrInvalidToken)
	}
	payload.CallerName = claims.Subject
	payload.Groups = claims.Groups
	payload.Duration = time.Duration(claims.Duration)
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	return payload, nil
}

func (j *JWTSigner) CryptoHash256(data []byte) (hash [itokens.HashLength]byte) {
	hasher := hmac.New(jwt.SigningMethodHS256.Hash.New, j.secretKey)
	hasher.Write(data)
	copy(hash[:], hasher.Sum(nil))
	return
}

func setErrorDescription(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return fmt.Errorf("%w: %w", itokens.ErrTokenExpired, err)
	}
	return fmt.Errorf("%w: %w", itokens.ErrInvalidToken, err)
}
