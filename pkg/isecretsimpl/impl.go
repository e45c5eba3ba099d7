/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecretsimpl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/voedger/websecurity/pkg/isecrets"
)

const (
	SecretRootEnv     = "WEBSECURITY_SECRETS"
	defaultSecretRoot = "/run/secrets"
)

type secretReader struct {
	secretRoot string
}

// Trailing new lines are trimmed, secret files are usually written by editors
func (r *secretReader) ReadSecret(name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, isecrets.ErrSecretNameIsBlank
	}
	bb, err := os.ReadFile(filepath.Join(r.secretRoot, filepath.Clean("/"+name)))
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(bb, "\r\n"), nil
}
