package template

import (
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Engine resolves placeholder tokens in mock response templates.
// An Engine with no SequenceStore is stateless and fully thread-safe.
// The store, when attached, provides its own synchronization.
type Engine struct {
	sequences *SequenceStore
}

// New creates a template engine with a default sequence store.
func New() *Engine {
	return &Engine{sequences: NewSequenceStore()}
}

// NewWithSequences creates a template engine sharing the given sequence
// store, so counters survive across engines (e.g. per-route engines backed
// by one server-wide store).
func NewWithSequences(store *SequenceStore) *Engine {
	return &Engine{sequences: store}
}

// tokenRegex matches {{$name[.path][ arg1 arg2 ...]}} with optional
// whitespace inside the braces. Non-$ {{...}} text is not a token.
var tokenRegex = regexp.MustCompile(`\{\{\s*(\$[^{}]+?)\s*\}\}`)

// Resolve walks a JSON-like template value and substitutes every
// recognized placeholder token. Maps and slices are rebuilt with resolved
// values (the input is never mutated), strings go through token
// substitution, and all other scalars pass through unchanged.
func (e *Engine) Resolve(value any, ctx *Context) any {
	switch v := value.(type) {
	case string:
		return e.resolveLeaf(v, ctx)
	case map[string]any:
		// Keys are walked in sorted order so that seeded rendering is
		// reproducible; map iteration order would otherwise reshuffle the
		// RNG draws between runs.
		out := make(map[string]any, len(v))
		for _, key := range slices.Sorted(maps.Keys(v)) {
			out[key] = e.Resolve(v[key], ctx)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = e.Resolve(val, ctx)
		}
		return out
	default:
		return value
	}
}

// ResolveString resolves tokens in a single string and renders the result
// as text. This is the entry point for callers templating non-JSON
// payloads (plain-text bodies, header values).
func (e *Engine) ResolveString(s string, ctx *Context) string {
	return formatValue(e.resolveLeaf(s, ctx))
}

// resolveLeaf substitutes tokens in a string leaf. A leaf that is exactly
// one token resolves to the typed value; tokens embedded in a larger
// string render as text. Unrecognized tokens stay in place verbatim.
func (e *Engine) resolveLeaf(s string, ctx *Context) any {
	loc := tokenRegex.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}

	// Whole-field token: preserve the resolved value's type.
	if loc[0] == 0 && loc[1] == len(s) {
		if value, ok := e.evaluate(s[loc[2]:loc[3]], ctx); ok {
			return value
		}
		return s
	}

	return tokenRegex.ReplaceAllStringFunc(s, func(match string) string {
		sub := tokenRegex.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		if value, ok := e.evaluate(sub[1], ctx); ok {
			return formatValue(value)
		}
		return match
	})
}

// variableFunc resolves one built-in variable. args holds the
// whitespace-separated words after the variable name.
type variableFunc func(e *Engine, ctx *Context, args []string) any

// builtins maps variable names to resolvers. Adding a variable is one
// table entry plus its function; request-scoped lookups are handled by
// prefix in evaluate.
var builtins = map[string]variableFunc{
	"$timestamp":     resolveTimestamp,
	"$isoDate":       resolveISODate,
	"$uuid":          resolveUUID,
	"$randomInt":     resolveRandomInt,
	"$randomFloat":   resolveRandomFloat,
	"$randomString":  resolveRandomString,
	"$randomEmail":   resolveRandomEmail,
	"$randomBoolean": resolveRandomBoolean,
	"$randomName":    resolveRandomName,
	"$sequence":      (*Engine).resolveSequence,
}

// evaluate resolves a single token expression (the text between the
// braces). The second return is false for unknown variables, which the
// caller leaves in place verbatim.
func (e *Engine) evaluate(expr string, ctx *Context) (any, bool) {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return nil, false
	}
	name, args := fields[0], fields[1:]

	if path, ok := strings.CutPrefix(name, "$request."); ok {
		return e.evaluateRequest(path, ctx)
	}

	if fn, ok := builtins[name]; ok {
		return fn(e, ctx, args), true
	}

	return nil, false
}

// evaluateRequest resolves $request.* lookups. Known scopes with a missing
// value resolve to the empty string; unknown scopes report false so the
// token passes through untouched.
func (e *Engine) evaluateRequest(path string, ctx *Context) (any, bool) {
	parts := strings.SplitN(path, ".", 2)
	scope := parts[0]
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch scope {
	case "query":
		if ctx == nil || key == "" {
			return "", true
		}
		return ctx.Request.Query[key], true
	case "header":
		if ctx == nil || key == "" {
			return "", true
		}
		return lookupHeader(ctx.Request.Headers, key), true
	case "path":
		if ctx == nil || key == "" {
			return "", true
		}
		return ctx.PathParams[key], true
	case "body":
		if ctx == nil || key == "" {
			return "", true
		}
		return resolveBodyPath(key, ctx.Request.Body), true
	case "method":
		if ctx == nil {
			return "", true
		}
		return ctx.Request.Method, true
	}

	return nil, false
}

// resolveBodyPath walks the parsed request body along a dot-separated
// path. The path is evaluated as a JSONPath expression, so nested maps and
// array indices both work. Any miss resolves to the empty string.
func resolveBodyPath(path string, body any) any {
	if body == nil {
		return ""
	}
	expr, err := jp.ParseString(path)
	if err != nil {
		return ""
	}
	results := expr.Get(body)
	if len(results) == 0 {
		return ""
	}
	return results[0]
}

// resolveSequence resolves {{$sequence name}} and {{$sequence name start}}.
func (e *Engine) resolveSequence(ctx *Context, args []string) any {
	if e.sequences == nil || len(args) == 0 {
		return ""
	}
	start := int64(1)
	if len(args) >= 2 {
		if n, err := strconv.ParseInt(args[1], 10, 64); err == nil {
			start = n
		}
	}
	return e.sequences.Next(args[0], start)
}

// formatValue renders a resolved value as text for embedding in a larger
// string. Maps and slices (e.g. an object reached via $request.body.*)
// render as JSON, not Go syntax.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", v)
	}
}
