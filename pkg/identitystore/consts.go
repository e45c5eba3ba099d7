/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package identitystore

// Usual priorities, lower is consulted first
const (
	Priority_Token      = 10
	Priority_Persistent = 50
	Priority_InMemory   = 100
	Priority_GroupsOnly = 200
)
