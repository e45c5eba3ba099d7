/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ihttp

import "time"

type CLIParams struct {
	// 0 means any free port
	Port int `env:"PORT"`

	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}
