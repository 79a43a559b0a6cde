// Package numerics implements the numeric core of mcpnum: the response
// envelope every tool returns, the constant and operator tables, sequence
// parsing, and the sum / standard deviation / elementwise computations.
//
// The package is transport-agnostic and has no MCP dependencies. Domain
// failures (malformed elements, unknown constants, division by zero) are
// reported through envelopes or typed results, never through panics, so
// that every tool invocation terminates in a well-formed envelope.
package numerics
