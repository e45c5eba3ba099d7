/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecretsimpl

import (
	"os"

	"github.com/voedger/websecurity/pkg/isecrets"
)

// ProvideSecretReader reads secrets as files of the SecretRootEnv directory, defaultSecretRoot if the variable is not set
func ProvideSecretReader() isecrets.ISecretReader {
	secretRoot := defaultSecretRoot
	if customSecretRoot := os.Getenv(SecretRootEnv); customSecretRoot != "" {
		secretRoot = customSecretRoot
	}
	return &secretReader{secretRoot: secretRoot}
}
