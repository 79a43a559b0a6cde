package numerics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSequence converts a raw argument list into a slice of float64.
// Elements may arrive as JSON numbers (float64), integers, json.Number, or
// numeric strings; anything else rejects the whole call with an error naming
// the first offending index and value. A nil slice parses to an empty
// sequence.
func ParseSequence(raw []interface{}) ([]float64, error) {
	out := make([]float64, 0, len(raw))
	for i, v := range raw {
		f, err := parseElement(v)
		if err != nil {
			return nil, fmt.Errorf("element %d (%v) is not a number", i, v)
		}
		out = append(out, f)
	}
	return out, nil
}

func parseElement(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// FormatFloat renders a float the way every tool result does. NaN renders as
// the sentinel string.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatSequence renders a sequence as a bracketed, comma-separated list,
// e.g. "[4, 2, NaN]". Positions holding the NaN sentinel stay readable while
// keeping the result non-parseable as a plain number list.
func FormatSequence(xs []float64) string {
	parts := make([]string, len(xs))
	for i, v := range xs {
		parts[i] = FormatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ContainsNaN reports whether any position of xs is NaN.
func ContainsNaN(xs []float64) bool {
	for _, v := range xs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
