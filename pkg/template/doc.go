// Package template resolves {{$...}} placeholder tokens in JSON-like mock
// response templates. Templates are walked recursively: string leaves are
// substituted, maps and slices are rebuilt with resolved values, and all
// other scalars pass through unchanged.
//
// # Built-in Variables
//
// Time-related:
//   - {{$timestamp}} - Current Unix time in milliseconds
//   - {{$isoDate}} - Current time in RFC3339 format
//
// Random values:
//   - {{$uuid}} - Random UUID v4
//   - {{$randomInt}} - Random integer in [0, 1000]
//   - {{$randomInt A B}} - Random integer in [A, B]
//   - {{$randomFloat}} - Random float in [0, 1)
//   - {{$randomString N}} - Random alphanumeric string of length N (default 10)
//   - {{$randomEmail}} - Random address of the form word.word@example.com
//   - {{$randomBoolean}} - Random boolean
//   - {{$randomName}} - Random full name
//
// Stateful:
//   - {{$sequence name}} - Auto-incrementing counter starting at 1
//   - {{$sequence name N}} - Auto-incrementing counter starting at N
//
// # Request Variables
//
// Access inbound request data with the {{$request.*}} prefix:
//   - {{$request.query.key}} - Query parameter value
//   - {{$request.header.key}} - Header value (case-insensitive lookup)
//   - {{$request.body.dotted.path}} - Parsed JSON body field; the path is a
//     JSONPath expression, so array access like items[0].id also works
//   - {{$request.path.key}} - Path parameter value
//   - {{$request.method}} - HTTP method of the inbound request
//
// Missing request fields resolve to the empty string. Unknown variable
// names are left in place verbatim, so a broken template degrades to
// visible placeholder text instead of failing the mock request.
//
// # Typed Resolution
//
// A field whose value is exactly one token resolves to a typed value:
// {{$timestamp}}, {{$randomInt}} and {{$randomFloat}} become numbers,
// {{$randomBoolean}} becomes a boolean, and {{$request.body.*}} yields the
// raw body value. Tokens embedded in a larger string render as text.
//
// # Determinism
//
// A Context may carry a seeded *rand.Rand, in which case every random
// variable draws from it. This is how test fixtures get reproducible
// output; when no RNG is attached the process-global source is used.
package template
