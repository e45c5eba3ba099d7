/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ihttpimpl

import "time"

const (
	HealthPath               = "/healthz"
	defaultReadHeaderTimeout = 5 * time.Second
	shutdownTimeout          = 10 * time.Second
)
