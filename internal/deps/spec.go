package deps

import "strings"

// Kind classifies a dependency specifier
type Kind int

const (
	// KindPackage is a registry package reference, optionally pinned (pytest==2.9.2)
	KindPackage Kind = iota
	// KindRequirements is a local requirements-file reference (-r{toxinidir}/requirements.txt)
	KindRequirements
	// KindVCS is a version-control source reference (git+https://...@ref#egg=name)
	KindVCS
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindRequirements:
		return "requirements"
	case KindVCS:
		return "vcs"
	default:
		return "package"
	}
}

// Spec is one parsed dependency specifier
type Spec struct {
	Raw  string
	Kind Kind

	// KindPackage
	Name       string
	Constraint string // version constraint including operator, e.g. "==2.9.2"

	// KindRequirements
	Path string

	// KindVCS
	URL string
	Ref string
	Egg string
}

// constraint operators recognized in package specifiers, longest first
var constraintOps = []string{"===", "==", ">=", "<=", "~=", "!=", ">", "<"}

// Parse classifies a single dependency specifier
func Parse(raw string) Spec {
	raw = strings.TrimSpace(raw)
	spec := Spec{Raw: raw}

	if strings.HasPrefix(raw, "-r") {
		spec.Kind = KindRequirements
		spec.Path = strings.TrimSpace(raw[len("-r"):])
		return spec
	}

	if strings.HasPrefix(raw, "git+") {
		spec.Kind = KindVCS
		url := strings.TrimPrefix(raw, "git+")
		if i := strings.Index(url, "#egg="); i >= 0 {
			spec.Egg = url[i+len("#egg="):]
			url = url[:i]
		}
		// The ref separator is an @ after the scheme's host part
		schemeEnd := strings.Index(url, "://")
		if at := strings.LastIndex(url, "@"); at > schemeEnd+2 {
			spec.Ref = url[at+1:]
			url = url[:at]
		}
		spec.URL = url
		return spec
	}

	spec.Kind = KindPackage
	spec.Name = raw
	for _, op := range constraintOps {
		if i := strings.Index(raw, op); i > 0 {
			spec.Name = strings.TrimSpace(raw[:i])
			spec.Constraint = strings.TrimSpace(raw[i:])
			break
		}
	}
	return spec
}

// ParseAll classifies a list of dependency specifiers, preserving order
func ParseAll(raws []string) []Spec {
	specs := make([]Spec, 0, len(raws))
	for _, raw := range raws {
		specs = append(specs, Parse(raw))
	}
	return specs
}

// PipArgs returns the arguments to pass to pip install for this specifier
func (s Spec) PipArgs() []string {
	if s.Kind == KindRequirements {
		return []string{"-r", s.Path}
	}
	return []string{s.Raw}
}
