//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/wire"

	"github.com/voedger/websecurity/pkg/itokensjwt"
)

func wireServer(params CLIParams) (WiredServer, func(), error) {
	panic(
		wire.Build(
			provideTime,
			provideDB,
			provideSecretReader,
			provideSecretKey,
			itokensjwt.ProvideITokens,
			provideCallersStore,
			provideTokenStore,
			provideIdentityStoreHandler,
			provideRememberMeStore,
			provideLoginTokensCleaner,
			provideMechanism,
			provideConstraints,
			provideSessions,
			provideRuntime,
			provideHTTPProcessor,
			wire.FieldsOf(&params, "HTTP"),
			wire.Struct(new(WiredServer), "*"),
		),
	)
}
