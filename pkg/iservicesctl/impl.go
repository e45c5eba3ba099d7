/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iservicesctl

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/websecurity/pkg/iservices"
)

func (sc *servicesController) PrepareAndRun(ctx context.Context, services map[string]iservices.IService) (join func(ctx context.Context), err error) {
	names := maps.Keys(services)
	slices.Sort(names)

	var errs error
	for _, name := range names {
		if err := services[name].Prepare(); err != nil {
			logger.Error("service preparation failed:", name, err)
			errs = errors.Join(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", iservices.ErrAtLeastOneServiceFailedToStart, errs)
	}

	// a service which stops before ctx is done stops the others
	runCtx, stop := context.WithCancel(ctx)
	wg := &sync.WaitGroup{}
	for _, name := range names {
		wg.Add(1)
		go func(name string, service iservices.IService) {
			defer wg.Done()
			logger.Info("service started:", name)
			service.Run(runCtx)
			if runCtx.Err() == nil {
				logger.Error("service stopped unexpectedly:", name)
				stop()
				return
			}
			logger.Info("service stopped:", name)
		}(name, services[name])
	}

	return func(joinCtx context.Context) {
		select {
		case <-joinCtx.Done():
		case <-runCtx.Done():
		}
		stop()
		logger.Verbose("waiting for services...")
		wg.Wait()
	}, nil
}
