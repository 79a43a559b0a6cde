package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequenceNumbers(t *testing.T) {
	xs, err := ParseSequence([]interface{}{2.0, 3, 4.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4.5}, xs)
}

func TestParseSequenceEmpty(t *testing.T) {
	xs, err := ParseSequence(nil)
	require.NoError(t, err)
	assert.Empty(t, xs)

	xs, err = ParseSequence([]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, xs)
}

func TestParseSequenceNumericStrings(t *testing.T) {
	xs, err := ParseSequence([]interface{}{"1.5", " 2 ", "-3"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, -3}, xs)
}

func TestParseSequenceRejectsNonNumeric(t *testing.T) {
	_, err := ParseSequence([]interface{}{1.0, "NotANumber", 3.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
	assert.Contains(t, err.Error(), "NotANumber")
}

func TestParseSequenceRejectsUnsupportedType(t *testing.T) {
	_, err := ParseSequence([]interface{}{1.0, map[string]interface{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}

func TestParseSequenceNaNStringFlowsThrough(t *testing.T) {
	// "NaN" parses as a real float; it is not a validation failure.
	xs, err := ParseSequence([]interface{}{"NaN"})
	require.NoError(t, err)
	require.Len(t, xs, 1)
	assert.True(t, math.IsNaN(xs[0]))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "9.5", FormatFloat(9.5))
	assert.Equal(t, "0", FormatFloat(0))
	assert.Equal(t, "3e+10", FormatFloat(3e10))
	assert.Equal(t, "NaN", FormatFloat(math.NaN()))
}

func TestFormatSequence(t *testing.T) {
	assert.Equal(t, "[4, 2, 1]", FormatSequence([]float64{4, 2, 1}))
	assert.Equal(t, "[]", FormatSequence(nil))
	assert.Equal(t, "[NaN, 0.5]", FormatSequence([]float64{math.NaN(), 0.5}))
}

func TestContainsNaN(t *testing.T) {
	assert.False(t, ContainsNaN([]float64{1, 2, 3}))
	assert.False(t, ContainsNaN(nil))
	assert.True(t, ContainsNaN([]float64{1, math.NaN()}))
}
