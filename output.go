package polonio

import (
	"strconv"
	"strings"
)

// OutputBuffer is the evaluator's appendable output string: text segments
// are written verbatim, echo statements write a formatted Value.
type OutputBuffer struct {
	sb strings.Builder
}

// WriteString appends raw text, used for template text segments.
func (o *OutputBuffer) WriteString(s string) {
	o.sb.WriteString(s)
}

// WriteValue formats v with FormatValue and appends it.
func (o *OutputBuffer) WriteValue(v Value) {
	o.sb.WriteString(FormatValue(v))
}

// String returns everything written so far.
func (o *OutputBuffer) String() string {
	return o.sb.String()
}

// FormatValue is the single value-to-text formatter shared by echo, the ..
// concat operator, and the tostring builtin (spec.md §4.3):
// Null -> "", Bool -> "true"/"false", Number -> shortest round-trip
// decimal (integer-valued numbers render with no decimal point), String ->
// itself, Array -> "[array]", Object -> "[object]", Function/Builtin ->
// "[function]".
func FormatValue(v Value) string {
	switch v.Kind {
	case NullValueKind:
		return ""
	case BoolValueKind:
		if v.Bool {
			return "true"
		}
		return "false"
	case NumberValueKind:
		return formatNumber(v.Number)
	case StringValueKind:
		return v.Str
	case ArrayValueKind:
		return "[array]"
	case ObjectValueKind:
		return "[object]"
	default:
		return "[function]"
	}
}

// formatNumber renders value with Go's shortest round-trip decimal in
// fixed-point notation (never scientific), which already omits the decimal
// point for integer-valued doubles.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
