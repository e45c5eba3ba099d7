/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iservicesctl

import (
	"github.com/voedger/websecurity/pkg/iservices"
)

func New() iservices.IServicesController {
	return &servicesController{}
}
