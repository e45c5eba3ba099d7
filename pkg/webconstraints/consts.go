/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package webconstraints

import "net/http"

const (
	RoleAnyAuthenticated = "**"
	RoleAnyDeclared      = "*"
	DefaultMethod        = http.MethodGet
	specSeparator        = ":"
)
