/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iservicesctl

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/websecurity/pkg/iservices"
)

type svcMock struct {
	prepareShouldFail bool
	prepareCalled     bool
	runCalled         atomic.Bool
	name              string
	// Run returns at once
	runShouldFail bool
	stopped       atomic.Bool
}

func (svc *svcMock) Prepare() (err error) {
	svc.prepareCalled = true
	if svc.prepareShouldFail {
		return fmt.Errorf("error %v", svc.name)
	}
	return nil
}

func (svc *svcMock) Run(ctx context.Context) {
	svc.runCalled.Store(true)
	defer svc.stopped.Store(true)
	if svc.runShouldFail {
		return
	}
	<-ctx.Done()
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	services := map[string]iservices.IService{
		"service1": &svcMock{name: "service1"},
		"service2": &svcMock{name: "service2"},
		"service3": &svcMock{name: "service3"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	join, err := New().PrepareAndRun(ctx, services)
	require.NoError(err)
	require.NotNil(join)

	cancel()
	join(ctx)

	for _, svc := range services {
		require.True(svc.(*svcMock).prepareCalled)
		require.True(svc.(*svcMock).runCalled.Load())
	}
}

func TestServiceStoppedUnexpectedly(t *testing.T) {
	require := require.New(t)

	services := map[string]iservices.IService{
		"service1": &svcMock{name: "service1"},
		"service2": &svcMock{name: "service2", runShouldFail: true},
	}

	ctx := context.Background()
	join, err := New().PrepareAndRun(ctx, services)
	require.NoError(err)

	joined := make(chan struct{})
	go func() {
		join(ctx)
		close(joined)
	}()
	select {
	case <-joined:
	case <-time.After(5 * time.Second):
		require.Fail("join is not finished after a service stopped")
	}

	for _, svc := range services {
		require.True(svc.(*svcMock).stopped.Load())
	}
}

func TestPrepareFailure(t *testing.T) {
	require := require.New(t)

	services := map[string]iservices.IService{
		"service1": &svcMock{name: "service1"},
		"service2": &svcMock{name: "service2", prepareShouldFail: true},
		"service3": &svcMock{name: "service3"},
		"service4": &svcMock{name: "service4", prepareShouldFail: true},
	}

	join, err := New().PrepareAndRun(context.Background(), services)
	require.ErrorIs(err, iservices.ErrAtLeastOneServiceFailedToStart)
	require.ErrorContains(err, "error service2")
	require.ErrorContains(err, "error service4")
	require.Nil(join)

	for _, svc := range services {
		require.True(svc.(*svcMock).prepareCalled)
		require.False(svc.(*svcMock).runCalled.Load())
	}
}
