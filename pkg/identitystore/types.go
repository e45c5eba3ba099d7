/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package identitystore

import (
	"github.com/voedger/websecurity/pkg/isecurity"
)

// StoreBase is embedded by stores to implement Priority() and ValidationTypes()
type StoreBase struct {
	id              string
	priority        int
	validationTypes []isecurity.ValidationType
}

type handler struct {
	stores []isecurity.IIdentityStore
}
