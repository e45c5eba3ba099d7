/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isession

import "context"

// IAuthSessionStore keeps authentication sessions between requests.
// Must be safe for concurrent use, returned sessions are copies
type IAuthSessionStore interface {
	// Creates the new empty session
	Create(ctx context.Context) (AuthSession, error)

	// ErrSessionNotFound if there is no such session or it is expired
	Get(ctx context.Context, id string) (AuthSession, error)

	// ErrSessionNotFound if there is no such session or it is expired
	Save(ctx context.Context, session AuthSession) error

	// No error if there is no such session
	Invalidate(ctx context.Context, id string) error
}
