/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecrets

import "errors"

type ISecretReader interface {
	ReadSecret(name string) ([]byte, error)
}

var ErrSecretNameIsBlank = errors.New("secret name is blank")
