/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coreutils

import "os"

const (
	ContentType     = "Content-Type"
	ApplicationJSON = "application/json"
	TextPlain       = "text/plain"
	Authorization   = "Authorization"
	WWWAuthenticate = "WWW-Authenticate"
	Location        = "Location"
	BearerPrefix    = "Bearer "
	BasicPrefix     = "Basic "
)

const (
	FileMode_rw_rw_rw_ os.FileMode = 0666
	FileMode_rwxrwxrwx os.FileMode = 0777
)
