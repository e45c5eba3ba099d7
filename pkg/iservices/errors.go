/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iservices

import "errors"

var (
	ErrAtLeastOneServiceFailedToStart = errors.New("at least one service failed to start")
	ErrServiceStoppedUnexpectedly     = errors.New("service stopped unexpectedly")
)
