/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package itokensjwt

import (
	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/isecrets"
	"github.com/voedger/websecurity/pkg/itokens"
)

// ProvideITokens panics if the secretKey is shorter than SecretKeyLength
func ProvideITokens(secretKey SecretKeyType, iTime coreutils.ITime) itokens.ITokens {
	return NewJWTSigner(secretKey, iTime)
}

// ProvideTestSecretsReader returns SecretKeyExample for SecretKeyJWTName, other secrets are read by the realSecretReader
func ProvideTestSecretsReader(realSecretReader isecrets.ISecretReader) isecrets.ISecretReader {
	return &testSecretReader{realSecretReader: realSecretReader}
}

func (tsr *testSecretReader) ReadSecret(name string) ([]byte, error) {
	if name == SecretKeyJWTName {
		return SecretKeyExample, nil
	}
	return tsr.realSecretReader.ReadSecret(name)
}
