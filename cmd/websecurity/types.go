/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"time"

	"github.com/voedger/websecurity/pkg/ihttp"
	"github.com/voedger/websecurity/pkg/iservices"
)

type CLIParams struct {
	HTTP ihttp.CLIParams `envPrefix:"HTTP_"`

	// bbolt database with callers and login tokens is kept here
	DataDir string `env:"DATA_DIR"`

	// Mechanism_*
	Mechanism string `env:"MECHANISM"`
	Realm     string `env:"REALM"`

	// Wrap the mechanism with the remember-me one
	RememberMe bool `env:"REMEMBER_ME"`

	// Lifetime of the remember-me cookie and of the login token it carries
	RememberMeTTL time.Duration `env:"REMEMBER_ME_TTL"`

	// YAML, default constraints are used if empty
	ConstraintsFile string `env:"CONSTRAINTS_FILE"`

	// YAML callers in addition to the persistent ones, optional
	UsersFile string `env:"USERS_FILE"`

	SessionTTL   time.Duration `env:"SESSION_TTL"`
	SecureCookie bool          `env:"SECURE_COOKIE"`

	// Example JWT secret key is used instead of the one from the secrets directory
	DevSecrets bool `env:"DEV_SECRETS"`
}

type WiredServer struct {
	HTTPProcessor      ihttp.IHTTPProcessor
	LoginTokensCleaner iservices.IService
}

type whoAmI struct {
	Caller        string   `json:"caller,omitempty"`
	Authenticated bool     `json:"authenticated"`
	Groups        []string `json:"groups,omitempty"`
	Admin         bool     `json:"admin"`
	AdminArea     bool     `json:"adminArea"`
}

type tokenReply struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
