package template

import (
	"time"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Defaults used when a variable's arguments are missing or malformed.
const (
	defaultIntMin       = 0
	defaultIntMax       = 1000
	defaultStringLength = 10
)

// resolveTimestamp returns the current Unix time in milliseconds.
func resolveTimestamp(_ *Engine, _ *Context, _ []string) any {
	return time.Now().UnixMilli()
}

// resolveISODate returns the current time in RFC3339 format.
func resolveISODate(_ *Engine, _ *Context, _ []string) any {
	return time.Now().UTC().Format(time.RFC3339)
}

// resolveUUID returns a random version-4 UUID in canonical lowercase form.
func resolveUUID(_ *Engine, ctx *Context, _ []string) any {
	return rngUUID(ctxRNG(ctx))
}

// resolveRandomInt returns a random integer in [0, 1000], or in [A, B]
// when the token carries two integer arguments. Malformed arguments
// (non-integers, min > max) fall back to the default range.
func resolveRandomInt(_ *Engine, ctx *Context, args []string) any {
	lo, hi := defaultIntMin, defaultIntMax
	if len(args) >= 2 {
		a, errA := parseInt(args[0])
		b, errB := parseInt(args[1])
		if errA == nil && errB == nil && a <= b {
			lo, hi = a, b
		}
	}
	return lo + rngIntN(ctxRNG(ctx), hi-lo+1)
}

// resolveRandomFloat returns a random float in [0, 1).
func resolveRandomFloat(_ *Engine, ctx *Context, _ []string) any {
	return rngFloat64(ctxRNG(ctx))
}

// resolveRandomString returns a random alphanumeric string. Length comes
// from the first argument, defaulting to 10 when missing or malformed.
func resolveRandomString(_ *Engine, ctx *Context, args []string) any {
	length := defaultStringLength
	if len(args) >= 1 {
		if n, err := parseInt(args[0]); err == nil && n > 0 {
			length = n
		}
	}
	rng := ctxRNG(ctx)
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[rngIntN(rng, len(alphanumeric))]
	}
	return string(b)
}

// resolveRandomEmail returns an address of the form word.word@example.com.
func resolveRandomEmail(_ *Engine, ctx *Context, _ []string) any {
	rng := ctxRNG(ctx)
	first := emailWords[rngIntN(rng, len(emailWords))]
	second := emailWords[rngIntN(rng, len(emailWords))]
	return first + "." + second + "@example.com"
}

// resolveRandomBoolean returns a random boolean value, not its string form.
func resolveRandomBoolean(_ *Engine, ctx *Context, _ []string) any {
	return rngIntN(ctxRNG(ctx), 2) == 1
}

// resolveRandomName returns a random full name.
func resolveRandomName(_ *Engine, ctx *Context, _ []string) any {
	rng := ctxRNG(ctx)
	first := firstNames[rngIntN(rng, len(firstNames))]
	last := lastNames[rngIntN(rng, len(lastNames))]
	return first + " " + last
}
