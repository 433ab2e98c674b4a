// Package matching provides route-pattern helpers for mock routes:
// extraction of named path parameters and segment-wise path matching.
// Patterns use :name markers, e.g. "/api/users/:id".
package matching

import "strings"

// ExtractPathParams extracts named path parameters from a route pattern
// and a concrete request path. Any query string on the path is ignored.
//
// Pattern segments starting with ':' capture the corresponding path
// segment under the name after the colon; literal segments are skipped
// without being validated (whether the route matches at all is the
// router's call, see MatchPath). Duplicate parameter names keep the last
// occurrence.
//
//	ExtractPathParams("/api/users/:id", "/api/users/123") == {"id": "123"}
func ExtractPathParams(pattern, actualPath string) map[string]string {
	patternSegs := splitSegments(pattern)
	pathSegs := splitSegments(stripQuery(actualPath))

	params := make(map[string]string)
	for i, seg := range patternSegs {
		if i >= len(pathSegs) {
			break
		}
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			params[name] = pathSegs[i]
		}
	}
	return params
}

// MatchPath reports whether a concrete path matches a route pattern.
// :name segments match any single path segment; literal segments must
// match exactly; segment counts must agree. Any query string on the path
// is ignored.
func MatchPath(pattern, path string) bool {
	patternSegs := splitSegments(pattern)
	pathSegs := splitSegments(stripQuery(path))

	if len(patternSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, ":") {
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

// stripQuery drops everything from the first '?'.
func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

// splitSegments splits a path on '/', discarding empty segments from
// leading, trailing, or doubled slashes.
func splitSegments(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}
