/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/websecurity/pkg/identitystore/bbolt"
	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/itokensjwt"
)

func newTokenCmd() *cobra.Command {
	params, envErr := newCLIParams()
	var password string
	duration := Default_TokenDuration
	cmd := &cobra.Command{
		Use:   "token NAME",
		Short: "Validate the caller credentials and print the bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			key, err := provideSecretKey(provideSecretReader(params))
			if err != nil {
				return err
			}
			tokenStore := provideTokenStore(itokensjwt.ProvideITokens(key, provideTime()))
			return withCallersStore(params, func(callers *bbolt.Store) error {
				handler, err := provideIdentityStoreHandler(params, callers, tokenStore)
				if err != nil {
					return err
				}
				result, err := handler.Validate(cmd.Context(), isecurity.NewUsernamePasswordCredential(args[0], password))
				if err != nil {
					return err
				}
				if !result.IsValid() {
					return fmt.Errorf("%w: %s", ErrInvalidCredentials, args[0])
				}
				tok, err := tokenStore.IssueToken(result, duration)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), tok)
				return nil
			})
		},
	}
	addStorageFlags(cmd, &params)
	cmd.Flags().StringVar(&password, "password", "", "caller password")
	cmd.Flags().DurationVar(&duration, "duration", duration, "token lifetime")
	return cmd
}
