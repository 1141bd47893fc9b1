package entity

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidBlockPattern is returned when a block pattern cannot be parsed.
var ErrInvalidBlockPattern = errors.New("invalid block pattern")

// Blocked response constants. Every matched request gets the same answer.
const (
	BlockedStatusCode   = 403
	BlockedReasonPhrase = "Blocked"
)

// wildcardSchemes are the schemes a "*" scheme expands to.
var wildcardSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
}

// BlockRule is an immutable wildcard URL pattern with an implicit deny verdict.
// Patterns have the form scheme://host/path where any component may contain
// "*". A host starting with "*." matches the bare domain and all subdomains.
type BlockRule struct {
	pattern string
	scheme  string
	host    string
	path    string

	hostRe *regexp.Regexp
	pathRe *regexp.Regexp
}

// ParseBlockRule validates and compiles a block pattern.
func ParseBlockRule(pattern string) (*BlockRule, error) {
	raw := strings.TrimSpace(pattern)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidBlockPattern)
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return nil, fmt.Errorf("%w: %q is missing \"://\"", ErrInvalidBlockPattern, raw)
	}
	scheme = strings.ToLower(scheme)
	if scheme != "*" && !isSchemeName(scheme) {
		return nil, fmt.Errorf("%w: %q has an invalid scheme", ErrInvalidBlockPattern, raw)
	}

	host, path := rest, "/*"
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		host, path = rest[:idx], rest[idx:]
	}
	host = strings.ToLower(host)
	if host == "" || host == "*." {
		return nil, fmt.Errorf("%w: %q has an empty host", ErrInvalidBlockPattern, raw)
	}
	if strings.ContainsAny(host, " \t?#@:") {
		return nil, fmt.Errorf("%w: %q has an invalid host", ErrInvalidBlockPattern, raw)
	}
	if strings.ContainsAny(path, " \t") {
		return nil, fmt.Errorf("%w: %q has an invalid path", ErrInvalidBlockPattern, raw)
	}

	hostRe, err := compileHostGlob(host)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidBlockPattern, raw, err)
	}
	pathRe, err := regexp.Compile("^" + globToRegexp(path) + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidBlockPattern, raw, err)
	}

	return &BlockRule{
		pattern: raw,
		scheme:  scheme,
		host:    host,
		path:    path,
		hostRe:  hostRe,
		pathRe:  pathRe,
	}, nil
}

// MustParseBlockRule is like ParseBlockRule but panics on error.
// Only meant for compile-time constant patterns.
func MustParseBlockRule(pattern string) *BlockRule {
	rule, err := ParseBlockRule(pattern)
	if err != nil {
		panic(err)
	}
	return rule
}

// Pattern returns the pattern the rule was parsed from.
func (r *BlockRule) Pattern() string { return r.pattern }

// Scheme returns the scheme component ("*" for any web scheme).
func (r *BlockRule) Scheme() string { return r.scheme }

// Host returns the lowercased host component.
func (r *BlockRule) Host() string { return r.host }

// Path returns the path component, "/*" when the pattern had none.
func (r *BlockRule) Path() string { return r.path }

// Matches reports whether u falls under this rule.
func (r *BlockRule) Matches(u *url.URL) bool {
	if u == nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	if r.scheme == "*" {
		if _, ok := wildcardSchemes[scheme]; !ok {
			return false
		}
	} else if scheme != r.scheme {
		return false
	}

	if !r.hostRe.MatchString(strings.ToLower(u.Hostname())) {
		return false
	}

	return r.pathRe.MatchString(requestPath(u))
}

// String implements fmt.Stringer.
func (r *BlockRule) String() string { return r.pattern }

func requestPath(u *url.URL) string {
	p := u.EscapedPath()
	if p == "" {
		p = "/"
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}

func compileHostGlob(host string) (*regexp.Regexp, error) {
	if rest, ok := strings.CutPrefix(host, "*."); ok {
		return regexp.Compile(`^(?:[^/]*\.)?` + globToRegexp(rest) + "$")
	}
	return regexp.Compile("^" + globToRegexp(host) + "$")
}

// globToRegexp quotes s and turns every "*" into ".*".
func globToRegexp(s string) string {
	parts := strings.Split(s, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, ".*")
}

func isSchemeName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
