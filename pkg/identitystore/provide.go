/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package identitystore

import (
	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/isecurity"
)

// ProvideHandler returns the handler which consults the stores in the priority order.
// Stores of the same priority keep the given order
func ProvideHandler(stores ...isecurity.IIdentityStore) isecurity.IIdentityStoreHandler {
	sorted := slices.Clone(stores)
	slices.SortStableFunc(sorted, func(a, b isecurity.IIdentityStore) bool {
		return a.Priority() < b.Priority()
	})
	return &handler{stores: sorted}
}

// NewStoreBase no validation types means both Validate and ProvideGroups
func NewStoreBase(id string, priority int, validationTypes ...isecurity.ValidationType) StoreBase {
	return StoreBase{
		id:              id,
		priority:        priority,
		validationTypes: validationTypes,
	}
}
