package polonio

import (
	"math"
	"strings"
)

func init() {
	RegisterBuiltin("type", builtinType)
	RegisterBuiltin("tostring", builtinToString)
	RegisterBuiltin("nl2br", builtinNl2Br)
	RegisterBuiltin("len", builtinLen)
	RegisterBuiltin("lower", builtinLower)
	RegisterBuiltin("upper", builtinUpper)
	RegisterBuiltin("trim", builtinTrim)
	RegisterBuiltin("replace", builtinReplace)
	RegisterBuiltin("split", builtinSplit)
	RegisterBuiltin("contains", builtinContains)
	RegisterBuiltin("starts_with", builtinStartsWith)
	RegisterBuiltin("ends_with", builtinEndsWith)
	RegisterBuiltin("count", builtinCount)
	RegisterBuiltin("push", builtinPush)
	RegisterBuiltin("pop", builtinPop)
	RegisterBuiltin("join", builtinJoin)
	RegisterBuiltin("range", builtinRange)
	RegisterBuiltin("keys", builtinKeys)
	RegisterBuiltin("has_key", builtinHasKey)
	RegisterBuiltin("get", builtinGet)
	RegisterBuiltin("set", builtinSet)
	RegisterBuiltin("abs", builtinAbs)
	RegisterBuiltin("floor", builtinFloor)
	RegisterBuiltin("ceil", builtinCeil)
	RegisterBuiltin("round", builtinRound)
	RegisterBuiltin("min", builtinMin)
	RegisterBuiltin("max", builtinMax)
	RegisterBuiltin("is_null", builtinIsNull)
	RegisterBuiltin("is_bool", builtinIsBool)
	RegisterBuiltin("is_number", builtinIsNumber)
	RegisterBuiltin("is_string", builtinIsString)
	RegisterBuiltin("is_array", builtinIsArray)
	RegisterBuiltin("is_object", builtinIsObject)
	RegisterBuiltin("is_function", builtinIsFunction)
}

func builtinType(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "type", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return StringOf(v.TypeName()), nil
}

func builtinToString(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "tostring", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return StringOf(FormatValue(v)), nil
}

func builtinNl2Br(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "nl2br", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	input := FormatValue(v)
	var out strings.Builder
	out.Grow(len(input))
	for i := 0; i < len(input); {
		switch {
		case input[i] == '\r' && i+1 < len(input) && input[i+1] == '\n':
			out.WriteString("<br>\n")
			i += 2
		case input[i] == '\n' || input[i] == '\r':
			out.WriteString("<br>\n")
			i++
		default:
			out.WriteByte(input[i])
			i++
		}
	}
	return StringOf(out.String()), nil
}

func builtinLen(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "len", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return NumberOf(float64(len(FormatValue(v)))), nil
}

func builtinLower(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "lower", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return StringOf(asciiLower(FormatValue(v))), nil
}

func builtinUpper(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "upper", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return StringOf(asciiUpper(FormatValue(v))), nil
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func builtinTrim(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "trim", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return StringOf(strings.Trim(FormatValue(v), " \t\n\r")), nil
}

func builtinReplace(ev *Evaluator, args []Value, loc Location) (Value, error) {
	source, err := argAt(ev, "replace", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	from, err := argAt(ev, "replace", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	to, err := argAt(ev, "replace", 2, args, loc)
	if err != nil {
		return Value{}, err
	}
	fromStr := FormatValue(from)
	if fromStr == "" {
		return StringOf(FormatValue(source)), nil
	}
	return StringOf(strings.ReplaceAll(FormatValue(source), fromStr, FormatValue(to))), nil
}

func builtinSplit(ev *Evaluator, args []Value, loc Location) (Value, error) {
	source, err := argAt(ev, "split", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	sep, err := argAt(ev, "split", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	text := FormatValue(source)
	sepStr := FormatValue(sep)
	if sepStr == "" {
		return ArrayOf(NewArrayRef([]Value{StringOf(text)})), nil
	}
	parts := strings.Split(text, sepStr)
	elements := make([]Value, len(parts))
	for i, p := range parts {
		elements[i] = StringOf(p)
	}
	return ArrayOf(NewArrayRef(elements)), nil
}

func builtinContains(ev *Evaluator, args []Value, loc Location) (Value, error) {
	haystack, err := argAt(ev, "contains", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	needle, err := argAt(ev, "contains", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(strings.Contains(FormatValue(haystack), FormatValue(needle))), nil
}

func builtinStartsWith(ev *Evaluator, args []Value, loc Location) (Value, error) {
	haystack, err := argAt(ev, "starts_with", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	needle, err := argAt(ev, "starts_with", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(strings.HasPrefix(FormatValue(haystack), FormatValue(needle))), nil
}

func builtinEndsWith(ev *Evaluator, args []Value, loc Location) (Value, error) {
	haystack, err := argAt(ev, "ends_with", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	needle, err := argAt(ev, "ends_with", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(strings.HasSuffix(FormatValue(haystack), FormatValue(needle))), nil
}

func builtinCount(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "count", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	switch v.Kind {
	case ArrayValueKind:
		return NumberOf(float64(len(v.Array.Elements))), nil
	case ObjectValueKind:
		return NumberOf(float64(v.Object.Len())), nil
	default:
		return Value{}, ev.runtimeErr("count: expected array or object", loc)
	}
}

func builtinPush(ev *Evaluator, args []Value, loc Location) (Value, error) {
	arrValue, err := argAt(ev, "push", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	element, err := argAt(ev, "push", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	arr, err := requireArrayArg(ev, "push", arrValue, loc)
	if err != nil {
		return Value{}, err
	}
	arr.Elements = append(arr.Elements, element)
	return NumberOf(float64(len(arr.Elements))), nil
}

func builtinPop(ev *Evaluator, args []Value, loc Location) (Value, error) {
	arrValue, err := argAt(ev, "pop", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	arr, err := requireArrayArg(ev, "pop", arrValue, loc)
	if err != nil {
		return Value{}, err
	}
	if len(arr.Elements) == 0 {
		return Null, nil
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last, nil
}

func builtinJoin(ev *Evaluator, args []Value, loc Location) (Value, error) {
	arrValue, err := argAt(ev, "join", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	sep, err := argAt(ev, "join", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	arr, err := requireArrayArg(ev, "join", arrValue, loc)
	if err != nil {
		return Value{}, err
	}
	sepStr := FormatValue(sep)
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = FormatValue(el)
	}
	return StringOf(strings.Join(parts, sepStr)), nil
}

func builtinRange(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "range", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	n, err := requireNumberArg(ev, "range", v, loc)
	if err != nil {
		return Value{}, err
	}
	if n <= 0 {
		return ArrayOf(NewArrayRef(nil)), nil
	}
	count := int(n)
	elements := make([]Value, count)
	for i := 0; i < count; i++ {
		elements[i] = NumberOf(float64(i))
	}
	return ArrayOf(NewArrayRef(elements)), nil
}

func builtinKeys(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "keys", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	obj, err := requireObjectArg(ev, "keys", v, loc)
	if err != nil {
		return Value{}, err
	}
	sorted := obj.SortedKeys()
	elements := make([]Value, len(sorted))
	for i, k := range sorted {
		elements[i] = StringOf(k)
	}
	return ArrayOf(NewArrayRef(elements)), nil
}

func builtinHasKey(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "has_key", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	keyValue, err := argAt(ev, "has_key", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	obj, err := requireObjectArg(ev, "has_key", v, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(obj.Has(FormatValue(keyValue))), nil
}

func builtinGet(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "get", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	keyValue, err := argAt(ev, "get", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	fallback := optionalArgAt(2, args, Null)
	obj, err := requireObjectArg(ev, "get", v, loc)
	if err != nil {
		return Value{}, err
	}
	if value, ok := obj.Get(FormatValue(keyValue)); ok {
		return value, nil
	}
	return fallback, nil
}

func builtinSet(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "set", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	keyValue, err := argAt(ev, "set", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	value, err := argAt(ev, "set", 2, args, loc)
	if err != nil {
		return Value{}, err
	}
	obj, err := requireObjectArg(ev, "set", v, loc)
	if err != nil {
		return Value{}, err
	}
	obj.Set(FormatValue(keyValue), value)
	return value, nil
}

func builtinAbs(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "abs", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	n, err := requireNumberArg(ev, "abs", v, loc)
	if err != nil {
		return Value{}, err
	}
	return NumberOf(math.Abs(n)), nil
}

func builtinFloor(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "floor", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	n, err := requireNumberArg(ev, "floor", v, loc)
	if err != nil {
		return Value{}, err
	}
	return NumberOf(math.Floor(n)), nil
}

func builtinCeil(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "ceil", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	n, err := requireNumberArg(ev, "ceil", v, loc)
	if err != nil {
		return Value{}, err
	}
	return NumberOf(math.Ceil(n)), nil
}

func builtinRound(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "round", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	n, err := requireNumberArg(ev, "round", v, loc)
	if err != nil {
		return Value{}, err
	}
	return NumberOf(math.Round(n)), nil
}

func builtinMin(ev *Evaluator, args []Value, loc Location) (Value, error) {
	a, err := argAt(ev, "min", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	b, err := argAt(ev, "min", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	an, err := requireNumberArg(ev, "min", a, loc)
	if err != nil {
		return Value{}, err
	}
	bn, err := requireNumberArg(ev, "min", b, loc)
	if err != nil {
		return Value{}, err
	}
	return NumberOf(math.Min(an, bn)), nil
}

func builtinMax(ev *Evaluator, args []Value, loc Location) (Value, error) {
	a, err := argAt(ev, "max", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	b, err := argAt(ev, "max", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	an, err := requireNumberArg(ev, "max", a, loc)
	if err != nil {
		return Value{}, err
	}
	bn, err := requireNumberArg(ev, "max", b, loc)
	if err != nil {
		return Value{}, err
	}
	return NumberOf(math.Max(an, bn)), nil
}

func builtinIsNull(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "is_null", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(v.Kind == NullValueKind), nil
}

func builtinIsBool(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "is_bool", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(v.Kind == BoolValueKind), nil
}

func builtinIsNumber(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "is_number", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(v.Kind == NumberValueKind), nil
}

func builtinIsString(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "is_string", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(v.Kind == StringValueKind), nil
}

func builtinIsArray(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "is_array", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(v.Kind == ArrayValueKind), nil
}

func builtinIsObject(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "is_object", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(v.Kind == ObjectValueKind), nil
}

func builtinIsFunction(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "is_function", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	return BoolOf(v.Kind == FunctionValueKind || v.Kind == BuiltinValueKind), nil
}
