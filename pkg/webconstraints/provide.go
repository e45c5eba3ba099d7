/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package webconstraints

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func Provide(cfg Config) (*Constraints, error) {
	res := &Constraints{denyUncovered: cfg.DenyUncoveredHTTPMethods}
	res.declaredRoles = appendMissing(res.declaredRoles, cfg.DeclaredRoles...)
	for i, sc := range cfg.Constraints {
		cc, err := compile(sc)
		if err != nil {
			return nil, fmt.Errorf("constraint #%d %q: %w", i, sc.Name, err)
		}
		for _, role := range cc.roles {
			if role != RoleAnyAuthenticated && role != RoleAnyDeclared {
				res.declaredRoles = appendMissing(res.declaredRoles, role)
			}
		}
		res.constraints = append(res.constraints, cc)
	}
	return res, nil
}

func ParseConfig(data []byte) (cfg Config, err error) {
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse constraints config: %w", err)
	}
	return cfg, nil
}

// ProvideFromFile reads the YAML config, empty fileName means no constraints
func ProvideFromFile(fileName string) (*Constraints, error) {
	if len(fileName) == 0 {
		return Provide(Config{})
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return Provide(cfg)
}
