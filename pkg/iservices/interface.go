/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iservices

import "context"

// IService is a long-running part of the server: the HTTP processor, the login tokens cleaner etc.
type IService interface {
	// Acquires resources, e.g. listens the port. Run is not called if any service fails to prepare
	Prepare() (err error)

	// Blocks until ctx is done
	Run(ctx context.Context)
}

type IServicesController interface {
	// PrepareAndRun prepares all services, then runs each of them in a separate goroutine.
	// If any service fails to prepare then no service is run and
	//   errors.Is(err, ErrAtLeastOneServiceFailedToStart)
	// join() waits for ctx, or for any service to stop before ctx is done, and then for all services to finish
	PrepareAndRun(ctx context.Context, services map[string]IService) (join func(ctx context.Context), err error)
}
