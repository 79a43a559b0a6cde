package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"
)

// sequenceArgs carries the single numeric sequence accepted by add, sum and
// stddev. Elements stay untyped here; numerics.ParseSequence does the
// per-element validation.
type sequenceArgs struct {
	Numbers []interface{} `json:"numbers"`
}

// elementwiseArgs carries the two sequences and operator name accepted by
// the elementwise tool.
type elementwiseArgs struct {
	ListA    []interface{} `json:"list_a"`
	ListB    []interface{} `json:"list_b"`
	Operator string        `json:"operator"`
}

// decodeArgs decodes the raw argument bag of a tool call into a typed
// struct keyed by json tags.
func decodeArgs(req mcp.CallToolRequest, out interface{}) error {
	decoderConfig := &mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return fmt.Errorf("internal error creating argument decoder: %w", err)
	}
	if err := decoder.Decode(req.GetArguments()); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// hasArg reports whether the argument bag contains the key at all. A key
// that is present but empty (e.g. an empty list) is a valid input; a
// missing key is not.
func hasArg(req mcp.CallToolRequest, key string) bool {
	_, ok := req.GetArguments()[key]
	return ok
}
