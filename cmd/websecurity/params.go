/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/spf13/cobra"

	"github.com/voedger/websecurity/pkg/identitystore/rememberme"
	"github.com/voedger/websecurity/pkg/ihttp"
	"github.com/voedger/websecurity/pkg/isessionmem"
	"github.com/voedger/websecurity/pkg/mechanisms"
)

// newCLIParams defaults overlaid by the environment. Flags are applied over the result
func newCLIParams() (CLIParams, error) {
	params := CLIParams{
		HTTP:          ihttp.CLIParams{Port: Default_Port},
		DataDir:       Default_DataDir,
		Mechanism:     Default_Mechanism,
		Realm:         mechanisms.DefaultRealm,
		SessionTTL:    isessionmem.DefaultSessionTTL,
		RememberMeTTL: rememberme.DefaultTTL,
	}
	if err := env.ParseWithOptions(&params, env.Options{Prefix: envPrefix}); err != nil {
		return params, fmt.Errorf("failed to parse environment: %w", err)
	}
	return params, nil
}

// addStorageFlags flags of commands which work with the callers
func addStorageFlags(cmd *cobra.Command, params *CLIParams) {
	cmd.Flags().StringVar(&params.DataDir, "data-dir", params.DataDir, "database directory")
	cmd.Flags().StringVar(&params.UsersFile, "users-file", params.UsersFile, "YAML file of additional callers")
	cmd.Flags().BoolVar(&params.DevSecrets, "dev-secrets", params.DevSecrets, "use the example JWT secret key")
}
