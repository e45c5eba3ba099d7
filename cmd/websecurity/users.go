/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/identitystore/bbolt"
)

func newUserAddCmd() *cobra.Command {
	params, envErr := newCLIParams()
	var password string
	var groups []string
	cmd := &cobra.Command{
		Use:   "useradd NAME",
		Short: "Add or replace the persistent caller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return withCallersStore(params, func(store *bbolt.Store) error {
				if err := store.AddCaller(args[0], password, groups...); err != nil {
					return err
				}
				logger.Info(fmt.Sprintf("caller %q added, groups %v", args[0], groups))
				return nil
			})
		},
	}
	addStorageFlags(cmd, &params)
	cmd.Flags().StringVar(&password, "password", "", "caller password")
	cmd.Flags().StringSliceVar(&groups, "groups", nil, "comma-separated caller groups")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserDelCmd() *cobra.Command {
	params, envErr := newCLIParams()
	cmd := &cobra.Command{
		Use:   "userdel NAME",
		Short: "Remove the persistent caller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return withCallersStore(params, func(store *bbolt.Store) error {
				return store.RemoveCaller(args[0])
			})
		},
	}
	addStorageFlags(cmd, &params)
	return cmd
}

func newUsersCmd() *cobra.Command {
	params, envErr := newCLIParams()
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List the persistent callers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return withCallersStore(params, func(store *bbolt.Store) error {
				names, err := store.Callers()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
	addStorageFlags(cmd, &params)
	return cmd
}

func withCallersStore(params CLIParams, f func(store *bbolt.Store) error) error {
	db, cleanup, err := provideDB(params)
	if err != nil {
		return err
	}
	defer cleanup()
	store, err := provideCallersStore(db)
	if err != nil {
		return err
	}
	return f(store)
}
