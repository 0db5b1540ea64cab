package polonio

import (
	"fmt"
	"strings"
	"time"

	"github.com/oarkflow/date"
)

func init() {
	RegisterBuiltin("now", builtinNow)
	RegisterBuiltin("date_parts", builtinDateParts)
	RegisterBuiltin("date_format", builtinDateFormat)
	RegisterBuiltin("parse_date", builtinParseDate)
}

func builtinNow(ev *Evaluator, args []Value, loc Location) (Value, error) {
	if len(args) != 0 {
		return Value{}, ev.runtimeErr("now: expected 0 arguments", loc)
	}
	return NumberOf(float64(time.Now().Unix())), nil
}

func builtinDateParts(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "date_parts", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	epoch, err := requireNumberArg(ev, "date_parts", v, loc)
	if err != nil {
		return Value{}, err
	}
	t := time.Unix(int64(epoch), 0).UTC()
	result := NewObjectRef()
	result.Set("year", NumberOf(float64(t.Year())))
	result.Set("month", NumberOf(float64(t.Month())))
	result.Set("day", NumberOf(float64(t.Day())))
	result.Set("hour", NumberOf(float64(t.Hour())))
	result.Set("minute", NumberOf(float64(t.Minute())))
	result.Set("second", NumberOf(float64(t.Second())))
	return ObjectOf(result), nil
}

func builtinDateFormat(ev *Evaluator, args []Value, loc Location) (Value, error) {
	epochValue, err := argAt(ev, "date_format", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	fmtValue, err := argAt(ev, "date_format", 1, args, loc)
	if err != nil {
		return Value{}, err
	}
	epoch, err := requireNumberArg(ev, "date_format", epochValue, loc)
	if err != nil {
		return Value{}, err
	}
	t := time.Unix(int64(epoch), 0).UTC()
	out := FormatValue(fmtValue)
	out = replaceToken(out, "YYYY", pad(t.Year(), 4))
	out = replaceToken(out, "MM", pad(int(t.Month()), 2))
	out = replaceToken(out, "DD", pad(t.Day(), 2))
	out = replaceToken(out, "HH", pad(t.Hour(), 2))
	out = replaceToken(out, "mm", pad(t.Minute(), 2))
	out = replaceToken(out, "SS", pad(t.Second(), 2))
	return StringOf(out), nil
}

// builtinParseDate supplements the required set: date_format/date_parts
// only go epoch->string. parse_date gives the missing string->epoch
// direction, using the same github.com/oarkflow/date.Parse call the
// teacher's own utils.go reaches for to coerce free-form date strings.
func builtinParseDate(ev *Evaluator, args []Value, loc Location) (Value, error) {
	v, err := argAt(ev, "parse_date", 0, args, loc)
	if err != nil {
		return Value{}, err
	}
	if v.Kind != StringValueKind {
		return Value{}, ev.runtimeErr("parse_date: expected string", loc)
	}
	t, parseErr := date.Parse(v.Str)
	if parseErr != nil {
		return Value{}, ev.runtimeErr("parse_date: "+parseErr.Error(), loc)
	}
	return NumberOf(float64(t.UTC().Unix())), nil
}

func replaceToken(s, token, value string) string {
	return strings.ReplaceAll(s, token, value)
}

func pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
