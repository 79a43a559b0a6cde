// Package tools exposes the numeric core as MCP tools.
//
// Every handler routes its outcome through the numerics.Envelope contract:
// the tool result is always a JSON envelope {result, status, message}
// delivered as text content, for failures as well as successes. No JSON
// schema enforcement happens before a handler runs; all argument validation
// is performed here, so a malformed call produces an error envelope rather
// than a protocol-level fault.
package tools
