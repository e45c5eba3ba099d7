/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package webconstraints

type URLPatternKind uint8

const (
	URLPatternKind_Exact URLPatternKind = iota
	URLPatternKind_PathPrefix
	URLPatternKind_Extension
	URLPatternKind_Default
)

// URLPattern is the servlet url-pattern:
//   - `/a/b` exact
//   - `/a/*` path prefix, `/*` matches everything
//   - `*.jsp` extension
//   - `/` default
//   - the empty pattern is the application root, exact `/`
type URLPattern struct {
	raw  string
	kind URLPatternKind

	// exact: the path
	// path prefix: prefix without `/*`
	// extension: extension without `*.`
	value string
}

// URLPatternSpec is the url pattern followed by qualifying patterns which are excluded from it,
// e.g. `/a/*:/a/public/*:*.css`
type URLPatternSpec struct {
	Pattern    URLPattern
	Qualifiers []URLPattern
}

// SecurityConstraint protects resources matched by URLPatterns
type SecurityConstraint struct {
	Name        string   `yaml:"name"`
	URLPatterns []string `yaml:"urlPatterns"`

	// Constraint applies only to these methods.
	// Mutual exclusive with HTTPMethodOmissions. Empty both means all methods
	HTTPMethods []string `yaml:"httpMethods"`

	// Constraint applies to all methods except these
	HTTPMethodOmissions []string `yaml:"httpMethodOmissions"`

	// Caller must be in one of the roles.
	// RoleAnyAuthenticated means any authenticated caller,
	// RoleAnyDeclared means any role declared by the application.
	// Empty Roles and false DenyAll means no authorization constraint: the resource is public
	Roles []string `yaml:"roles"`

	// Nobody has access
	DenyAll bool `yaml:"denyAll"`
}

type Config struct {
	Constraints []SecurityConstraint `yaml:"constraints"`

	// Roles declared by the application in addition to roles found in constraints
	DeclaredRoles []string `yaml:"declaredRoles"`

	// Methods not covered by the constraints of the protected pattern are denied
	DenyUncoveredHTTPMethods bool `yaml:"denyUncoveredHttpMethods"`
}

// Decision is the result of constraints evaluation for a resource and method
type Decision struct {
	// There is an authorization constraint for the resource
	Protected bool

	// Nobody has access
	Excluded bool

	// Caller must be in one of
	Roles []string

	// Any authenticated caller has access
	AnyAuthenticated bool
}

type Constraints struct {
	constraints   []compiledConstraint
	declaredRoles []string
	denyUncovered bool
}

type compiledConstraint struct {
	name      string
	patterns  []URLPattern
	methods   []string
	omissions []string
	roles     []string
	denyAll   bool
}
