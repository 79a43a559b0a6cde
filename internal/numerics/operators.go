package numerics

import (
	"fmt"
	"math"
)

// Operator identifies a binary elementwise operation over two equal-length
// numeric sequences.
type Operator string

const (
	OperatorAdd      Operator = "add"
	OperatorSubtract Operator = "subtract"
	OperatorMultiply Operator = "multiply"
	OperatorDivide   Operator = "divide"
)

// operatorDescriptions is the process-wide operator table exposed by the
// elementwise_operators tool. Immutable after init.
var operatorDescriptions = map[Operator]string{
	OperatorAdd:      "Elementwise addition: result[i] = a[i] + b[i]",
	OperatorSubtract: "Elementwise subtraction: result[i] = a[i] - b[i]",
	OperatorMultiply: "Elementwise multiplication: result[i] = a[i] * b[i]",
	OperatorDivide:   "Elementwise division: result[i] = a[i] / b[i]; a zero divisor yields NaN at that position",
}

// ParseOperator validates an operator name against the operator table.
func ParseOperator(name string) (Operator, error) {
	op := Operator(name)
	if _, ok := operatorDescriptions[op]; !ok {
		return "", fmt.Errorf("unsupported operator %q (supported: add, subtract, multiply, divide)", name)
	}
	return op, nil
}

// OperatorDescriptions returns a copy of the operator table (name to
// description).
func OperatorDescriptions() map[string]string {
	out := make(map[string]string, len(operatorDescriptions))
	for op, desc := range operatorDescriptions {
		out[string(op)] = desc
	}
	return out
}

// ApplyElementwise applies op position-by-position across a and b, which the
// caller has already validated to be equal length. The full output sequence
// is always built: a zero divisor does not abort the call, it substitutes
// NaN at that position. The second return is the index of the first
// zero-division encountered, or -1 if none.
func ApplyElementwise(op Operator, a, b []float64) ([]float64, int) {
	out := make([]float64, len(a))
	firstErr := -1
	for i := range a {
		switch op {
		case OperatorAdd:
			out[i] = a[i] + b[i]
		case OperatorSubtract:
			out[i] = a[i] - b[i]
		case OperatorMultiply:
			out[i] = a[i] * b[i]
		case OperatorDivide:
			if b[i] == 0 {
				out[i] = math.NaN()
				if firstErr == -1 {
					firstErr = i
				}
			} else {
				out[i] = a[i] / b[i]
			}
		}
	}
	return out, firstErr
}
