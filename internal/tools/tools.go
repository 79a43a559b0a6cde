package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NumericTools provides the MCP tool surface over the numerics core.
// All tools are stateless; a single instance serves concurrent calls.
type NumericTools struct{}

// NewNumericTools creates the numeric tool set.
func NewNumericTools() *NumericTools {
	return &NumericTools{}
}

// GetNumericTools returns all numeric tool definitions.
func (nt *NumericTools) GetNumericTools() []mcp.Tool {
	tools := []mcp.Tool{}

	// Sequence tools
	tools = append(tools, nt.getSequenceTools()...)

	// Lookup and introspection tools
	tools = append(tools, nt.getLookupTools()...)

	return tools
}

// getSequenceTools returns the tools taking numeric sequence arguments.
func (nt *NumericTools) getSequenceTools() []mcp.Tool {
	numbersSchema := map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "number",
		},
		"description": "List of numbers (float or int)",
	}

	return []mcp.Tool{
		{
			Name:        "add",
			Description: "Numerically add a list of numbers (float or int). Use this for mathematical addition of any number of real numbers, including decimals and integers. Returns the sum as a float. Input should be a list of numbers.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"numbers": numbersSchema,
				},
				Required: []string{"numbers"},
			},
		},
		{
			Name:        "sum",
			Description: "Sum a list of numbers (float or int). Alias of the add tool. Returns the sum as a float; an empty list sums to 0.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"numbers": numbersSchema,
				},
				Required: []string{"numbers"},
			},
		},
		{
			Name:        "stddev",
			Description: "Compute the population standard deviation (divisor N) of a list of numbers. Undefined for fewer than two samples.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"numbers": numbersSchema,
				},
				Required: []string{"numbers"},
			},
		},
		{
			Name:        "elementwise",
			Description: "Apply a binary operator position-by-position across two equal-length lists of numbers. Division by zero yields NaN at that position while the remaining positions keep their results.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"list_a": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "number",
						},
						"description": "Left operand list",
					},
					"list_b": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "number",
						},
						"description": "Right operand list, same length as list_a",
					},
					"operator": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"add", "subtract", "multiply", "divide"},
						"description": "Operator to apply at each position",
					},
				},
				Required: []string{"list_a", "list_b", "operator"},
			},
		},
	}
}

// getLookupTools returns the constant lookup and introspection tools.
func (nt *NumericTools) getLookupTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("constant",
			mcp.WithDescription("Look up a physical or mathematical constant by name. Supported names: PI, E, SPEED_OF_LIGHT, PLANCK, ELEMENTARY_CHARGE, GRAVITATIONAL_CONSTANT, ELECTRON_MASS, PROTON_MASS."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Constant name, matched case-sensitively"),
			),
		),
		mcp.NewTool("elementwise_operators",
			mcp.WithDescription("List the operators supported by the elementwise tool with a description of each."),
		),
		mcp.NewTool("results_explanation",
			mcp.WithDescription("Explain the result/status/message response envelope returned by every tool."),
		),
	}
}

// RegisterAll registers every numeric tool and its handler on the given MCP
// server.
func (nt *NumericTools) RegisterAll(s *server.MCPServer) {
	handlers := map[string]server.ToolHandlerFunc{
		"add":                   nt.HandleAdd,
		"sum":                   nt.HandleSum,
		"stddev":                nt.HandleStdDev,
		"constant":              nt.HandleConstant,
		"elementwise":           nt.HandleElementwise,
		"elementwise_operators": nt.HandleElementwiseOperators,
		"results_explanation":   nt.HandleResultsExplanation,
	}

	for _, tool := range nt.GetNumericTools() {
		s.AddTool(tool, handlers[tool.Name])
	}
}
