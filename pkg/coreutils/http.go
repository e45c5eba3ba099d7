/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coreutils

import (
	"fmt"
	"net/http"

	"github.com/untillpro/goutils/logger"
)

func ServerAddress(port int) string {
	return fmt.Sprintf(":%d", port)
}

// ReplyErr writes err as JSON. Errors that are not SysError are reported with defaultStatusCode
func ReplyErr(w http.ResponseWriter, err error, defaultStatusCode int) {
	sysErr := WrapSysErrorToExact(err, defaultStatusCode)
	ReplyJSON(w, sysErr.HTTPStatus, sysErr.ToJSON())
}

func ReplyJSON(w http.ResponseWriter, httpCode int, body string) {
	w.Header().Set(ContentType, ApplicationJSON)
	w.WriteHeader(httpCode)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("failed to write response:", err)
	}
}

func ReplyUnauthorized(w http.ResponseWriter, message string) {
	ReplyErr(w, NewHTTPErrorf(http.StatusUnauthorized, message), http.StatusUnauthorized)
}

func ReplyForbidden(w http.ResponseWriter, message string) {
	ReplyErr(w, NewHTTPErrorf(http.StatusForbidden, message), http.StatusForbidden)
}
