/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/websecurity/pkg/iservices"
	"github.com/voedger/websecurity/pkg/iservicesctl"
)

func newServerCmd() *cobra.Command {
	params, envErr := newCLIParams()
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return runServer(cmd.Context(), params)
		},
	}
	addStorageFlags(serverCmd, &params)
	serverCmd.Flags().IntVar(&params.HTTP.Port, "port", params.HTTP.Port, "HTTP port, 0 means any free port")
	serverCmd.Flags().StringVar(&params.Mechanism, "mechanism", params.Mechanism,
		fmt.Sprintf("authentication mechanism: %s, %s or %s", Mechanism_Basic, Mechanism_Bearer, Mechanism_Form))
	serverCmd.Flags().StringVar(&params.Realm, "realm", params.Realm, "realm of the basic and bearer mechanisms")
	serverCmd.Flags().BoolVar(&params.RememberMe, "remember-me", params.RememberMe, "remember callers by the login token cookie")
	serverCmd.Flags().DurationVar(&params.RememberMeTTL, "remember-me-ttl", params.RememberMeTTL, "lifetime of the remember-me cookie and login token")
	serverCmd.Flags().StringVar(&params.ConstraintsFile, "constraints-file", params.ConstraintsFile, "YAML file of security constraints")
	serverCmd.Flags().DurationVar(&params.SessionTTL, "session-ttl", params.SessionTTL, "authentication session idle timeout")
	serverCmd.Flags().BoolVar(&params.SecureCookie, "secure-cookie", params.SecureCookie, "send cookies over HTTPS only")
	return serverCmd
}

func runServer(ctx context.Context, params CLIParams) error {
	wired, cleanup, err := wireServer(params)
	if err != nil {
		return fmt.Errorf("services not wired: %w", err)
	}
	defer cleanup()
	services := iservices.WiredStructPtrToMap(&wired)

	join, err := iservicesctl.New().PrepareAndRun(ctx, services)
	if err != nil {
		return fmt.Errorf("services preparation error: %w", err)
	}
	join(ctx)
	if ctx.Err() == nil {
		return iservices.ErrServiceStoppedUnexpectedly
	}
	return nil
}
