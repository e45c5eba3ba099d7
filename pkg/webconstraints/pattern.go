/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package webconstraints

import (
	"fmt"
	"strings"
)

func ParseURLPattern(s string) (URLPattern, error) {
	switch {
	case s == "":
		return URLPattern{raw: s, kind: URLPatternKind_Exact, value: "/"}, nil
	case s == "/":
		return URLPattern{raw: s, kind: URLPatternKind_Default}, nil
	case strings.HasPrefix(s, "*."):
		ext := s[2:]
		if len(ext) == 0 || strings.ContainsAny(ext, "/*") {
			return URLPattern{}, fmt.Errorf("%w: %q", ErrInvalidURLPattern, s)
		}
		return URLPattern{raw: s, kind: URLPatternKind_Extension, value: ext}, nil
	case strings.HasPrefix(s, "/"):
		if strings.HasSuffix(s, "/*") {
			prefix := s[:len(s)-2]
			if strings.Contains(prefix, "*") {
				return URLPattern{}, fmt.Errorf("%w: %q", ErrInvalidURLPattern, s)
			}
			return URLPattern{raw: s, kind: URLPatternKind_PathPrefix, value: prefix}, nil
		}
		if strings.Contains(s, "*") {
			return URLPattern{}, fmt.Errorf("%w: %q", ErrInvalidURLPattern, s)
		}
		return URLPattern{raw: s, kind: URLPatternKind_Exact, value: s}, nil
	}
	return URLPattern{}, fmt.Errorf("%w: %q", ErrInvalidURLPattern, s)
}

func (p URLPattern) Kind() URLPatternKind { return p.kind }

func (p URLPattern) String() string { return p.raw }

func (p URLPattern) Matches(path string) bool {
	switch p.kind {
	case URLPatternKind_Exact:
		return path == p.value
	case URLPatternKind_PathPrefix:
		return len(p.value) == 0 || path == p.value || strings.HasPrefix(path, p.value+"/")
	case URLPatternKind_Extension:
		lastSegment := path[strings.LastIndex(path, "/")+1:]
		dot := strings.LastIndex(lastSegment, ".")
		return dot >= 0 && lastSegment[dot+1:] == p.value
	}
	return true
}

// same reports whether both patterns address the same resources, e.g. the empty pattern and exact `/`
func (p URLPattern) same(other URLPattern) bool {
	return p.kind == other.kind && p.value == other.value
}

// covers reports whether all resources addressed by other are addressed by p as well
func (p URLPattern) covers(other URLPattern) bool {
	switch p.kind {
	case URLPatternKind_Default:
		return true
	case URLPatternKind_PathPrefix:
		switch other.kind {
		case URLPatternKind_Exact:
			return p.Matches(other.value)
		case URLPatternKind_PathPrefix:
			return len(p.value) == 0 || other.value == p.value || strings.HasPrefix(other.value, p.value+"/")
		}
	case URLPatternKind_Extension:
		switch other.kind {
		case URLPatternKind_Exact:
			return p.Matches(other.value)
		case URLPatternKind_Extension:
			return p.value == other.value
		}
	case URLPatternKind_Exact:
		return p.same(other)
	}
	return false
}

// representativePath is the path which the pattern is governed by
func (p URLPattern) representativePath() string {
	switch p.kind {
	case URLPatternKind_Exact:
		return p.value
	case URLPatternKind_PathPrefix:
		return p.value + "/"
	case URLPatternKind_Extension:
		return "/*." + p.value
	}
	// no real resource has such path so only `/*` and `/` match it
	return "/\x00"
}

func ParseURLPatternSpec(s string) (spec URLPatternSpec, err error) {
	parts := strings.Split(s, specSeparator)
	if spec.Pattern, err = ParseURLPattern(parts[0]); err != nil {
		return spec, fmt.Errorf("%w: %w", ErrInvalidURLPatternSpec, err)
	}
	for _, q := range parts[1:] {
		qualifier, err := ParseURLPattern(q)
		if err != nil {
			return spec, fmt.Errorf("%w: %w", ErrInvalidURLPatternSpec, err)
		}
		if !spec.Pattern.covers(qualifier) || spec.Pattern.same(qualifier) {
			return spec, fmt.Errorf("%w: %q does not qualify %q", ErrInvalidURLPatternSpec, q, parts[0])
		}
		spec.Qualifiers = append(spec.Qualifiers, qualifier)
	}
	return spec, nil
}

func (s URLPatternSpec) excludes(p URLPattern) bool {
	for _, q := range s.Qualifiers {
		if q.covers(p) {
			return true
		}
	}
	return false
}
