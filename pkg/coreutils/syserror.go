/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coreutils

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
)

// SysError is an error which knows the HTTP status it must be reported with
type SysError struct {
	HTTPStatus int
	Message    string
	Data       string
}

func NewSysError(statusCode int) error {
	return SysError{HTTPStatus: statusCode}
}

func NewHTTPErrorf(httpStatus int, args ...interface{}) SysError {
	return SysError{
		HTTPStatus: httpStatus,
		Message:    fmt.Sprint(args...),
	}
}

func NewHTTPError(httpStatus int, err error) SysError {
	return NewHTTPErrorf(httpStatus, err.Error())
}

func WrapSysErrorToExact(err error, defaultStatusCode int) SysError {
	if err == nil {
		return SysError{}
	}
	var res SysError
	if !errors.As(err, &res) {
		return SysError{Message: err.Error(), HTTPStatus: defaultStatusCode}
	}
	return res
}

func WrapSysError(err error, defaultStatusCode int) error {
	if err == nil {
		return err
	}
	return WrapSysErrorToExact(err, defaultStatusCode)
}

func (he SysError) Error() string {
	if len(he.Message) == 0 && he.HTTPStatus > 0 {
		return fmt.Sprintf("%d %s", he.HTTPStatus, http.StatusText(he.HTTPStatus))
	}
	return he.Message
}

func (he SysError) ToJSON() string {
	b := bytes.NewBufferString(fmt.Sprintf(`{"status":%d,"message":%q`, he.HTTPStatus, he.Message))
	if len(he.Data) > 0 {
		fmt.Fprintf(b, `,"data":%q`, he.Data)
	}
	b.WriteString("}")
	return b.String()
}
