/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ihttp

import (
	"github.com/voedger/websecurity/pkg/iservices"
)

// IHTTPProcessor serves the application handler and the health check
type IHTTPProcessor interface {
	iservices.IService

	// Actual port, useful when CLIParams.Port is 0. Valid after Prepare()
	ListeningPort() int
}
