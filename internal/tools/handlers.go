package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"mcpnum/internal/numerics"
	"mcpnum/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// constantResult is the JSON object encoded into the result field by the
// constant tool.
type constantResult struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// envelopeFieldDocs is the fixed explanation served by results_explanation.
var envelopeFieldDocs = map[string]string{
	"result":  "String-encoded tool output: a formatted number, a formatted list, or a JSON-encoded object. Empty on validation failures; NaN marks undefined numeric results such as division by zero.",
	"status":  "Either \"ok\" or \"error\". The sole success/failure signal of a tool call.",
	"message": "Human-readable explanation of the outcome. On errors it names the cause, e.g. the failing element or index.",
}

// envelopeResult delivers an envelope as the tool call's text content.
// Error envelopes travel the same way as successes; the transport never
// sees a domain failure as a protocol fault.
func envelopeResult(env numerics.Envelope) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(env.JSON()), nil
}

// validationError wraps a validation failure in the generic error envelope
// convention: empty result, message naming the tool and cause.
func validationError(tool string, err error) (*mcp.CallToolResult, error) {
	msg := fmt.Sprintf("%s failed: %v", tool, err)
	logging.Debug("Tools", "%s", msg)
	return envelopeResult(numerics.NewEnvelope("", false, msg))
}

// HandleAdd handles the add tool call.
func (nt *NumericTools) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return nt.handleSum(req, "add")
}

// HandleSum handles the sum tool call, the alias of add.
func (nt *NumericTools) HandleSum(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return nt.handleSum(req, "sum")
}

func (nt *NumericTools) handleSum(req mcp.CallToolRequest, tool string) (*mcp.CallToolResult, error) {
	var args sequenceArgs
	if err := decodeArgs(req, &args); err != nil {
		return validationError(tool, err)
	}
	if !hasArg(req, "numbers") {
		return validationError(tool, fmt.Errorf("numbers is required"))
	}

	xs, err := numerics.ParseSequence(args.Numbers)
	if err != nil {
		return validationError(tool, err)
	}

	total := numerics.Sum(xs)
	logging.Debug("Tools", "%s over %d numbers = %s", tool, len(xs), numerics.FormatFloat(total))
	return envelopeResult(numerics.NewEnvelope(numerics.FormatFloat(total), true, tool+" successful"))
}

// HandleStdDev handles the stddev tool call.
func (nt *NumericTools) HandleStdDev(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args sequenceArgs
	if err := decodeArgs(req, &args); err != nil {
		return validationError("stddev", err)
	}
	if !hasArg(req, "numbers") {
		return validationError("stddev", fmt.Errorf("numbers is required"))
	}

	xs, err := numerics.ParseSequence(args.Numbers)
	if err != nil {
		return validationError("stddev", err)
	}

	// Too few samples is a defined numeric edge case, not a validation
	// failure: the result carries the NaN sentinel instead of being empty.
	if len(xs) < 2 {
		msg := fmt.Sprintf("stddev is undefined for fewer than 2 samples (got %d)", len(xs))
		logging.Debug("Tools", "%s", msg)
		return envelopeResult(numerics.NewEnvelope(numerics.NaNSentinel, false, msg))
	}

	sd := numerics.PopulationStdDev(xs)
	if math.IsNaN(sd) {
		// NaN inputs propagate through the statistic.
		return envelopeResult(numerics.NewEnvelope(numerics.NaNSentinel, false, "stddev result is NaN"))
	}

	logging.Debug("Tools", "stddev over %d numbers = %s", len(xs), numerics.FormatFloat(sd))
	return envelopeResult(numerics.NewEnvelope(numerics.FormatFloat(sd), true, "stddev successful"))
}

// HandleConstant handles the constant tool call.
func (nt *NumericTools) HandleConstant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return validationError("constant", fmt.Errorf("name is required"))
	}

	value, ok := numerics.LookupConstant(name)
	if !ok {
		return validationError("constant", fmt.Errorf("unsupported constant %q", name))
	}

	payload, _ := json.Marshal(constantResult{Name: name, Value: value})
	logging.Debug("Tools", "constant %s = %s", name, numerics.FormatFloat(value))
	return envelopeResult(numerics.NewEnvelope(string(payload), true, "constant successful"))
}

// HandleElementwise handles the elementwise tool call.
//
// Unlike the other tools, a failed elementwise call still returns usable
// per-position data: the full output sequence is built with NaN substituted
// at failed positions, and only then is the success flag computed.
func (nt *NumericTools) HandleElementwise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args elementwiseArgs
	if err := decodeArgs(req, &args); err != nil {
		return validationError("elementwise", err)
	}
	for _, key := range []string{"list_a", "list_b", "operator"} {
		if !hasArg(req, key) {
			return validationError("elementwise", fmt.Errorf("%s is required", key))
		}
	}

	a, err := numerics.ParseSequence(args.ListA)
	if err != nil {
		return validationError("elementwise", fmt.Errorf("list_a: %v", err))
	}
	b, err := numerics.ParseSequence(args.ListB)
	if err != nil {
		return validationError("elementwise", fmt.Errorf("list_b: %v", err))
	}
	if len(a) != len(b) {
		return validationError("elementwise", fmt.Errorf("list_a and list_b must have the same length (got %d and %d)", len(a), len(b)))
	}

	op, err := numerics.ParseOperator(args.Operator)
	if err != nil {
		return validationError("elementwise", err)
	}

	out, firstErr := numerics.ApplyElementwise(op, a, b)
	ok := firstErr == -1 && !numerics.ContainsNaN(out)

	var msg string
	switch {
	case ok:
		msg = fmt.Sprintf("elementwise %s successful", op)
	case firstErr >= 0:
		msg = fmt.Sprintf("division by zero at index %d", firstErr)
	default:
		msg = "one or more results are NaN"
	}

	result := numerics.FormatSequence(out)
	logging.Debug("Tools", "elementwise %s over %d positions: %s", op, len(out), msg)
	return envelopeResult(numerics.NewEnvelope(result, ok, msg))
}

// HandleElementwiseOperators handles the elementwise_operators tool call.
func (nt *NumericTools) HandleElementwiseOperators(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, _ := json.Marshal(numerics.OperatorDescriptions())
	return envelopeResult(numerics.NewEnvelope(string(payload), true, "elementwise_operators successful"))
}

// HandleResultsExplanation handles the results_explanation tool call.
func (nt *NumericTools) HandleResultsExplanation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, _ := json.Marshal(envelopeFieldDocs)
	return envelopeResult(numerics.NewEnvelope(string(payload), true, "results_explanation successful"))
}
