package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumericTools(t *testing.T) {
	nt := NewNumericTools()
	assert.NotNil(t, nt)
}

func TestGetNumericTools(t *testing.T) {
	nt := NewNumericTools()
	tools := nt.GetNumericTools()

	// add, sum, stddev, elementwise + constant, elementwise_operators, results_explanation
	assert.Len(t, tools, 7)

	toolNames := make(map[string]bool)
	for _, tool := range tools {
		toolNames[tool.Name] = true
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.Name)
	}

	assert.True(t, toolNames["add"])
	assert.True(t, toolNames["sum"])
	assert.True(t, toolNames["stddev"])
	assert.True(t, toolNames["constant"])
	assert.True(t, toolNames["elementwise"])
	assert.True(t, toolNames["elementwise_operators"])
	assert.True(t, toolNames["results_explanation"])
}

func TestSequenceToolSchemas(t *testing.T) {
	nt := NewNumericTools()

	for _, tool := range nt.GetNumericTools() {
		switch tool.Name {
		case "add", "sum", "stddev":
			require.Contains(t, tool.InputSchema.Properties, "numbers", "tool %s", tool.Name)
			assert.Equal(t, []string{"numbers"}, tool.InputSchema.Required, "tool %s", tool.Name)
		case "elementwise":
			require.Contains(t, tool.InputSchema.Properties, "list_a")
			require.Contains(t, tool.InputSchema.Properties, "list_b")
			require.Contains(t, tool.InputSchema.Properties, "operator")
			assert.Len(t, tool.InputSchema.Required, 3)
		}
	}
}
