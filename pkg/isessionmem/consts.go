/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isessionmem

import "time"

const DefaultSessionTTL = 30 * time.Minute
