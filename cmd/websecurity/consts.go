/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "time"

// Environment variables are WEBSECURITY_ + the env tag of CLIParams, e.g. WEBSECURITY_HTTP_PORT
const envPrefix = "WEBSECURITY_"

const (
	Default_Port          = 8080
	Default_DataDir       = "./data"
	Default_Mechanism     = Mechanism_Basic
	Default_TokenDuration = time.Hour
)

const (
	Mechanism_Basic  = "basic"
	Mechanism_Bearer = "bearer"
	Mechanism_Form   = "form"
)

const dbFileName = "websecurity.db"

const (
	path_Home       = "/"
	path_Login      = "/login"
	path_LoginError = "/login-error"
	path_Logout     = "/logout"
	path_WhoAmI     = "/api/whoami"
	path_Token      = "/api/token"
	path_AdminInfo  = "/api/admin/info"

	role_Admin = "admin"
)
