/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package identitystore

import (
	"context"
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/isecurity"
)

func (h *handler) Validate(ctx context.Context, credential isecurity.Credential) (isecurity.CredentialValidationResult, error) {
	result := isecurity.NotValidatedResult
	var validatingStore isecurity.IIdentityStore
	for _, store := range h.stores {
		if !isecurity.Supports(store, isecurity.ValidationType_Validate) {
			continue
		}
		r, err := store.Validate(ctx, credential)
		if err != nil {
			return isecurity.InvalidResult, fmt.Errorf("identity store %s: %w", storeID(store), err)
		}
		if r.Status == isecurity.ValidationStatus_Valid {
			result = r
			validatingStore = store
			break
		}
		if r.Status == isecurity.ValidationStatus_Invalid {
			result = isecurity.InvalidResult
		}
	}
	if validatingStore == nil {
		if logger.IsVerbose() {
			logger.Verbose("credential is not validated by any store:", result.Status)
		}
		return result, nil
	}

	var groups []string
	if isecurity.Supports(validatingStore, isecurity.ValidationType_ProvideGroups) {
		groups = appendMissing(groups, result.Groups...)
	}
	for _, store := range h.stores {
		if !isGroupsOnly(store) {
			continue
		}
		g, err := store.CallerGroups(ctx, result)
		if err != nil {
			return isecurity.InvalidResult, fmt.Errorf("identity store %s: %w", storeID(store), err)
		}
		groups = appendMissing(groups, g...)
	}
	result.Groups = groups
	if len(result.IdentityStoreID) == 0 {
		result.IdentityStoreID = storeID(validatingStore)
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("caller %q is validated by %s, groups %v", result.CallerName(), result.IdentityStoreID, result.Groups))
	}
	return result, nil
}

func (b StoreBase) ID() string {
	return b.id
}

func (b StoreBase) Priority() int {
	return b.priority
}

func (b StoreBase) ValidationTypes() []isecurity.ValidationType {
	return b.validationTypes
}

func isGroupsOnly(store isecurity.IIdentityStore) bool {
	return isecurity.Supports(store, isecurity.ValidationType_ProvideGroups) &&
		!isecurity.Supports(store, isecurity.ValidationType_Validate)
}

func storeID(store isecurity.IIdentityStore) string {
	if s, ok := store.(interface{ ID() string }); ok && len(s.ID()) > 0 {
		return s.ID()
	}
	return fmt.Sprintf("%T", store)
}

func appendMissing(list []string, items ...string) []string {
	for _, item := range items {
		if !slices.Contains(list, item) {
			list = append(list, item)
		}
	}
	return list
}
