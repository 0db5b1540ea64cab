package polonio

import "strconv"

// argAt returns args[index], failing Runtime with a message prefixed by
// name (as spec.md §4.4 requires of every builtin) when too few arguments
// were supplied.
func argAt(ev *Evaluator, name string, index int, args []Value, loc Location) (Value, error) {
	if index >= len(args) {
		return Value{}, ev.runtimeErr(name+": expected at least "+strconv.Itoa(index+1)+" argument(s)", loc)
	}
	return args[index], nil
}

func optionalArgAt(index int, args []Value, fallback Value) Value {
	if index >= len(args) {
		return fallback
	}
	return args[index]
}

func requireNumberArg(ev *Evaluator, name string, v Value, loc Location) (float64, error) {
	if v.Kind != NumberValueKind {
		return 0, ev.runtimeErr(name+": expected number", loc)
	}
	return v.Number, nil
}

func requireArrayArg(ev *Evaluator, name string, v Value, loc Location) (*ArrayRef, error) {
	if v.Kind != ArrayValueKind {
		return nil, ev.runtimeErr(name+": expected array", loc)
	}
	return v.Array, nil
}

func requireObjectArg(ev *Evaluator, name string, v Value, loc Location) (*ObjectRef, error) {
	if v.Kind != ObjectValueKind {
		return nil, ev.runtimeErr(name+": expected object", loc)
	}
	return v.Object, nil
}
