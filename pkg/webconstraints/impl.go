/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package webconstraints

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

// Check evaluates constraints of the best matching url pattern of the request path for the method.
// Best match is exact, then the longest path prefix, then extension, then default
func (c *Constraints) Check(path string, method string) Decision {
	best, ok := c.bestMatch(path)
	if !ok {
		return Decision{}
	}
	d := c.decide(best, method)
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s %s -> %q: %s", method, path, best.raw, d))
	}
	return d
}

// CheckSpec evaluates constraints for all resources addressed by the URL pattern spec:
// the decision which governs its first pattern plus decisions of every constrained pattern
// covered by the first pattern and not excluded by the qualifiers.
// Access is granted if all decisions permit it
func (c *Constraints) CheckSpec(spec URLPatternSpec, method string) Decisions {
	ds := Decisions{c.Check(spec.Pattern.representativePath(), method)}
	if spec.Pattern.kind == URLPatternKind_Exact {
		return ds
	}
	for _, p := range c.patterns() {
		if spec.Pattern.covers(p) && !spec.excludes(p) {
			ds = append(ds, c.decide(p, method))
		}
	}
	return ds
}

// IsEmpty reports whether there are no constraints at all
func (c *Constraints) IsEmpty() bool {
	return len(c.constraints) == 0
}

func (c *Constraints) DeclaredRoles() []string {
	return slices.Clone(c.declaredRoles)
}

// Permits reports whether the caller has access
func (d Decision) Permits(authenticated bool, isInRole func(role string) bool) bool {
	if !d.Protected {
		return true
	}
	if d.Excluded || !authenticated {
		return false
	}
	if d.AnyAuthenticated {
		return true
	}
	for _, role := range d.Roles {
		if isInRole(role) {
			return true
		}
	}
	return false
}

func (d Decision) String() string {
	switch {
	case !d.Protected:
		return "public"
	case d.Excluded:
		return "excluded"
	case d.AnyAuthenticated:
		return "any authenticated"
	}
	return "roles " + strings.Join(d.Roles, ",")
}

// Decisions permit if every decision permits
type Decisions []Decision

func (ds Decisions) Permits(authenticated bool, isInRole func(role string) bool) bool {
	for _, d := range ds {
		if !d.Permits(authenticated, isInRole) {
			return false
		}
	}
	return true
}

func (c *Constraints) bestMatch(path string) (best URLPattern, ok bool) {
	var prefix, extension, deflt *URLPattern
	for _, p := range c.patterns() {
		if !p.Matches(path) {
			continue
		}
		p := p
		switch p.kind {
		case URLPatternKind_Exact:
			return p, true
		case URLPatternKind_PathPrefix:
			if prefix == nil || len(p.value) > len(prefix.value) {
				prefix = &p
			}
		case URLPatternKind_Extension:
			extension = &p
		case URLPatternKind_Default:
			deflt = &p
		}
	}
	for _, p := range []*URLPattern{prefix, extension, deflt} {
		if p != nil {
			return *p, true
		}
	}
	return best, false
}

// patterns returns distinct patterns of all constraints
func (c *Constraints) patterns() (res []URLPattern) {
	for _, cc := range c.constraints {
		for _, p := range cc.patterns {
			if slices.IndexFunc(res, p.same) < 0 {
				res = append(res, p)
			}
		}
	}
	return res
}

func (c *Constraints) decide(p URLPattern, method string) Decision {
	var applicable []compiledConstraint
	constrained := false
	for _, cc := range c.constraints {
		if slices.IndexFunc(cc.patterns, p.same) < 0 {
			continue
		}
		constrained = true
		if cc.appliesTo(method) {
			applicable = append(applicable, cc)
		}
	}
	if len(applicable) == 0 {
		if constrained && c.denyUncovered {
			return Decision{Protected: true, Excluded: true}
		}
		return Decision{}
	}

	d := Decision{Protected: true}
	for _, cc := range applicable {
		if cc.denyAll {
			return Decision{Protected: true, Excluded: true}
		}
	}
	for _, cc := range applicable {
		if len(cc.roles) == 0 {
			// no authorization constraint
			return Decision{}
		}
		for _, role := range cc.roles {
			switch role {
			case RoleAnyAuthenticated:
				d.AnyAuthenticated = true
			case RoleAnyDeclared:
				d.Roles = appendMissing(d.Roles, c.declaredRoles...)
			default:
				d.Roles = appendMissing(d.Roles, role)
			}
		}
	}
	return d
}

func (cc compiledConstraint) appliesTo(method string) bool {
	method = strings.ToUpper(method)
	if len(cc.methods) > 0 {
		return slices.Contains(cc.methods, method)
	}
	return !slices.Contains(cc.omissions, method)
}

func compile(sc SecurityConstraint) (cc compiledConstraint, err error) {
	if len(sc.URLPatterns) == 0 {
		return cc, ErrConstraintHasNoPatterns
	}
	if len(sc.HTTPMethods) > 0 && len(sc.HTTPMethodOmissions) > 0 {
		return cc, ErrMethodsAndOmissions
	}
	cc.name = sc.Name
	cc.denyAll = sc.DenyAll
	cc.roles = slices.Clone(sc.Roles)
	for _, raw := range sc.URLPatterns {
		p, err := ParseURLPattern(raw)
		if err != nil {
			return cc, err
		}
		cc.patterns = append(cc.patterns, p)
	}
	for _, m := range sc.HTTPMethods {
		cc.methods = append(cc.methods, strings.ToUpper(m))
	}
	for _, m := range sc.HTTPMethodOmissions {
		cc.omissions = append(cc.omissions, strings.ToUpper(m))
	}
	return cc, nil
}

func appendMissing(to []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(to, v) {
			to = append(to, v)
		}
	}
	return to
}
