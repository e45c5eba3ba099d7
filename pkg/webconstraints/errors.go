/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package webconstraints

import "errors"

var (
	ErrInvalidURLPattern       = errors.New("invalid url pattern")
	ErrInvalidURLPatternSpec   = errors.New("invalid url pattern spec")
	ErrMethodsAndOmissions     = errors.New("httpMethods and httpMethodOmissions are mutual exclusive")
	ErrConstraintHasNoPatterns = errors.New("constraint has no url patterns")
)
