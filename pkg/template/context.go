package template

import (
	"encoding/json"
	"io"
	mathrand "math/rand/v2"
	"net/http"
	"strings"
)

// Context holds all available data for template resolution.
type Context struct {
	Request RequestContext

	// PathParams maps route path-parameter names to their matched values,
	// as produced by matching.ExtractPathParams.
	PathParams map[string]string

	// Rand, when non-nil, is used for all random variables instead of the
	// process-global source. Attach a seeded RNG for deterministic output.
	Rand *mathrand.Rand
}

// RequestContext contains inbound request data available to templates.
type RequestContext struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string // keys are lowercased at construction
	Body    any               // parsed JSON body, or nil
	RawBody string
}

// NewContext creates a template context from an HTTP request and its
// already-read body. Header keys are normalized to lowercase so that
// {{$request.header.*}} lookups are case-insensitive regardless of how the
// client spelled them. Multi-valued query parameters and headers keep their
// first value.
func NewContext(r *http.Request, bodyBytes []byte) *Context {
	ctx := &Context{
		Request: RequestContext{
			Method:  r.Method,
			Path:    r.URL.Path,
			Query:   make(map[string]string),
			Headers: make(map[string]string),
			RawBody: string(bodyBytes),
		},
		PathParams: make(map[string]string),
	}

	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			ctx.Request.Query[key] = values[0]
		}
	}
	for key, values := range r.Header {
		if len(values) > 0 {
			ctx.Request.Headers[strings.ToLower(key)] = values[0]
		}
	}

	// Parse the body as JSON when it looks like JSON. Parse failures leave
	// Body nil; {{$request.body.*}} then resolves to empty strings.
	if len(bodyBytes) > 0 {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" || strings.Contains(contentType, "json") {
			var body any
			if err := json.Unmarshal(bodyBytes, &body); err == nil {
				ctx.Request.Body = body
			}
		}
	}

	return ctx
}

// NewContextFromRequest creates a template context by reading the request
// body. The body is consumed; callers that need it again must buffer it
// beforehand.
func NewContextFromRequest(r *http.Request) (*Context, error) {
	const maxTemplateBodySize = 10 << 20
	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxTemplateBodySize))
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()

	return NewContext(r, bodyBytes), nil
}

// NewContextFromMap creates a template context from already-parsed request
// parts. This is the entry point for callers that do not hold an
// *http.Request, such as the CLI. Header keys are lowercased.
func NewContextFromMap(body any, query, headers, pathParams map[string]string) *Context {
	ctx := &Context{
		Request: RequestContext{
			Query:   make(map[string]string, len(query)),
			Headers: make(map[string]string, len(headers)),
			Body:    body,
		},
		PathParams: make(map[string]string, len(pathParams)),
	}

	for key, value := range query {
		ctx.Request.Query[key] = value
	}
	for key, value := range headers {
		ctx.Request.Headers[strings.ToLower(key)] = value
	}
	for key, value := range pathParams {
		ctx.PathParams[key] = value
	}

	if body != nil {
		if jsonBytes, err := json.Marshal(body); err == nil {
			ctx.Request.RawBody = string(jsonBytes)
		}
	}

	return ctx
}

// lookupHeader returns the header value for key, case-insensitively.
// Contexts built through the constructors hold lowercase keys, so the
// direct lookup hits; the scan covers hand-built contexts.
func lookupHeader(headers map[string]string, key string) string {
	if value, ok := headers[strings.ToLower(key)]; ok {
		return value
	}
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
