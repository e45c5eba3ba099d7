/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

import (
	"github.com/gorilla/mux"

	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/webconstraints"
)

func New(params RuntimeParams) *Runtime {
	if params.Constraints == nil {
		params.Constraints, _ = webconstraints.Provide(webconstraints.Config{})
	}
	if params.RoleMapper == nil {
		params.RoleMapper = GroupRoleMap(nil)
	}
	return &Runtime{
		params:  params,
		router:  mux.NewRouter(),
		handler: ProvideCallbackHandler(),
	}
}

func ProvideCallbackHandler() isecurity.ICallbackHandler {
	return &callbackHandler{}
}
