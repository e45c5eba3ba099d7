/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mem

import (
	"sync"

	"github.com/voedger/websecurity/pkg/identitystore"
	"github.com/voedger/websecurity/pkg/isecurity"
)

type Params struct {
	ID              string
	Priority        int
	ValidationTypes []isecurity.ValidationType

	// bcrypt cost, bcrypt.MinCost if zero
	HashCost int
}

// CallersConfig is the YAML file of callers
type CallersConfig struct {
	Callers []CallerConfig `yaml:"callers"`
}

// CallerConfig either Password or PasswordHash (bcrypt) should be given
type CallerConfig struct {
	Name         string   `yaml:"name"`
	Password     string   `yaml:"password"`
	PasswordHash string   `yaml:"passwordHash"`
	Groups       []string `yaml:"groups"`
}

type Store struct {
	identitystore.StoreBase
	hashCost int

	mu      sync.RWMutex
	callers map[string]caller
}

type caller struct {
	pwdHash []byte
	groups  []string
}
