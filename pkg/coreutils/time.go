/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coreutils

import (
	"sync"
	"time"
)

type ITime interface {
	Now() time.Time
}

func NewITime() ITime {
	return &realTime{}
}

type realTime struct{}

func (t *realTime) Now() time.Time {
	return time.Now()
}

// IMockTime is the time which moves only when told so
type IMockTime interface {
	ITime
	Add(d time.Duration)
}

func NewMockTime(now time.Time) IMockTime {
	return &mockedTime{now: now}
}

type mockedTime struct {
	sync.RWMutex
	now time.Time
}

func (t *mockedTime) Now() time.Time {
	t.RLock()
	defer t.RUnlock()
	return t.now
}

func (t *mockedTime) Add(d time.Duration) {
	t.Lock()
	t.now = t.now.Add(d)
	t.Unlock()
}
