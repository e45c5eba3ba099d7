/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voedger/websecurity/pkg/identitystore"
)

func Provide(params Params) *Store {
	if len(params.ID) == 0 {
		params.ID = DefaultID
	}
	return &Store{
		StoreBase: identitystore.NewStoreBase(params.ID, params.Priority, params.ValidationTypes...),
		hashCost:  params.HashCost,
		callers:   map[string]caller{},
	}
}

// ProvideFromFile loads callers from the YAML file, see CallersConfig
func ProvideFromFile(params Params, fileName string) (*Store, error) {
	s := Provide(params)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	cfg := CallersConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse callers file %s: %w", fileName, err)
	}
	for i, c := range cfg.Callers {
		if err := s.addCallerConfig(c); err != nil {
			return nil, fmt.Errorf("caller #%d %q: %w", i, c.Name, err)
		}
	}
	return s, nil
}
