package compute

import (
	"context"
	"fmt"
	"regexp"
)

// Lister produces the instances of a project whose names match a pattern.
// Implementations own the transport; the pattern is advisory (a server-side
// pre-filter) and callers re-check matches with Filter.
type Lister interface {
	List(ctx context.Context, project, pattern string) ([]Instance, error)
}

// ListFailedError wraps a failed listing attempt. Diagnostic carries the
// external system's own error text verbatim; we never reinterpret it.
type ListFailedError struct {
	Project    string
	Diagnostic string
	Err        error
}

func (e *ListFailedError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("listing instances in project %q failed: %s", e.Project, e.Diagnostic)
	}
	return fmt.Sprintf("listing instances in project %q failed: %v", e.Project, e.Err)
}

func (e *ListFailedError) Unwrap() error { return e.Err }

// CompilePattern validates the search pattern. Match semantics mirror the
// external tool's "name ~" operator: RE2, partial match, case-sensitive.
// A plain string therefore behaves as a substring match.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Filter keeps the instances whose name matches re, preserving the order
// the backend returned them in.
func Filter(instances []Instance, re *regexp.Regexp) []Instance {
	var out []Instance
	for _, in := range instances {
		if re.MatchString(in.Name) {
			out = append(out, in)
		}
	}
	return out
}

// literalPattern reports whether pattern contains no regexp metacharacters,
// i.e. it can be embedded in a server-side ".*p.*" filter untouched.
func literalPattern(pattern string) bool {
	return regexp.QuoteMeta(pattern) == pattern
}
