/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package mechanisms

import "errors"

var ErrMalformedSavedAuthentication = errors.New("malformed saved authentication")
