/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

// MessageInfo.Properties keys
const (
	PropertyIsMandatory     = "websecurity.isMandatory"
	PropertyRegisterSession = "websecurity.registerSession"
	PropertyAuthRequest     = "websecurity.authenticationRequest"
)
