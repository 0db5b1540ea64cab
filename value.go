package polonio

import "sort"

// ValueKind tags which alternative of Value is populated.
type ValueKind int

const (
	NullValueKind ValueKind = iota
	BoolValueKind
	NumberValueKind
	StringValueKind
	ArrayValueKind
	ObjectValueKind
	FunctionValueKind
	BuiltinValueKind
)

func (k ValueKind) String() string {
	switch k {
	case NullValueKind:
		return "null"
	case BoolValueKind:
		return "bool"
	case NumberValueKind:
		return "number"
	case StringValueKind:
		return "string"
	case ArrayValueKind:
		return "array"
	case ObjectValueKind:
		return "object"
	case FunctionValueKind, BuiltinValueKind:
		return "function"
	default:
		return "unknown"
	}
}

// ArrayRef is the shared-mutable backing store for an Array value. Every
// Value of kind ArrayValueKind that aliases the same ArrayRef observes the
// same elements, matching the aliasing contract in spec.md §3.
type ArrayRef struct {
	Elements []Value
}

// NewArrayRef wraps elements (taking ownership of the slice) in a fresh
// shared array.
func NewArrayRef(elements []Value) *ArrayRef {
	return &ArrayRef{Elements: elements}
}

// ObjectRef is the shared-mutable backing store for an Object value. It
// keeps insertion order for deterministic iteration (spec.md §3) while
// giving O(1) lookup.
type ObjectRef struct {
	order  []string
	values map[string]Value
}

// NewObjectRef constructs an empty, insertion-ordered object.
func NewObjectRef() *ObjectRef {
	return &ObjectRef{values: make(map[string]Value)}
}

// Get returns the value bound to key and whether it was present.
func (o *ObjectRef) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set inserts or overwrites key, appending it to the insertion order on
// first use.
func (o *ObjectRef) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.order = append(o.order, key)
	}
	o.values[key] = v
}

// Has reports whether key is bound.
func (o *ObjectRef) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Len returns the number of bound keys.
func (o *ObjectRef) Len() int { return len(o.order) }

// Keys returns keys in insertion order; callers must not mutate the slice.
func (o *ObjectRef) Keys() []string { return o.order }

// SortedKeys returns keys in lexicographic order, per keys() and for-loop
// iteration semantics (spec.md §4.3/§4.4).
func (o *ObjectRef) SortedKeys() []string {
	sorted := make([]string, len(o.order))
	copy(sorted, o.order)
	sort.Strings(sorted)
	return sorted
}

// FunctionValue is a user-declared function paired with the environment it
// closed over at declaration time.
type FunctionValue struct {
	Name    string
	Params  []string
	Body    []Stmt
	Closure *Environment
}

// BuiltinFn is the signature every intrinsic callable implements.
type BuiltinFn func(ev *Evaluator, args []Value, loc Location) (Value, error)

// BuiltinValue pairs an intrinsic's name (used to prefix its own error
// messages) with its implementation.
type BuiltinValue struct {
	Name string
	Fn   BuiltinFn
}

// Value is the tagged union every expression evaluates to: Null, Bool,
// Number, String, Array, Object, Function, or Builtin (spec.md §3). Only the
// field matching Kind is meaningful.
type Value struct {
	Kind     ValueKind
	Bool     bool
	Number   float64
	Str      string
	Array    *ArrayRef
	Object   *ObjectRef
	Function *FunctionValue
	Builtin  *BuiltinValue
}

// Null is the sole Null value; it is safe to share since Null carries no
// state.
var Null = Value{Kind: NullValueKind}

func BoolOf(b bool) Value   { return Value{Kind: BoolValueKind, Bool: b} }
func NumberOf(n float64) Value { return Value{Kind: NumberValueKind, Number: n} }
func StringOf(s string) Value  { return Value{Kind: StringValueKind, Str: s} }

func ArrayOf(ref *ArrayRef) Value   { return Value{Kind: ArrayValueKind, Array: ref} }
func ObjectOf(ref *ObjectRef) Value { return Value{Kind: ObjectValueKind, Object: ref} }

func FunctionOf(fn *FunctionValue) Value { return Value{Kind: FunctionValueKind, Function: fn} }
func BuiltinOf(b *BuiltinValue) Value    { return Value{Kind: BuiltinValueKind, Builtin: b} }

// TypeName implements the type() builtin and the "null/bool/number/..."
// vocabulary used throughout the spec.
func (v Value) TypeName() string { return v.Kind.String() }

// IsTruthy implements the truthiness table in spec.md §4.3: Null and
// Bool(false) are falsy, Number(0) and "" are falsy, everything else
// (including empty arrays/objects) is truthy.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case NullValueKind:
		return false
	case BoolValueKind:
		return v.Bool
	case NumberValueKind:
		return v.Number != 0.0
	case StringValueKind:
		return v.Str != ""
	default:
		return true
	}
}

// Equals implements heterogeneous, structural equality: values of different
// kinds are never equal, scalars compare by value, and Array/Object compare
// deeply by length/keys/elements rather than by identity.
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case NullValueKind:
		return true
	case BoolValueKind:
		return v.Bool == other.Bool
	case NumberValueKind:
		return v.Number == other.Number
	case StringValueKind:
		return v.Str == other.Str
	case ArrayValueKind:
		a, b := v.Array, other.Array
		if a == b {
			return true
		}
		if a == nil || b == nil || len(a.Elements) != len(b.Elements) {
			return false
		}
		for i := range a.Elements {
			if !a.Elements[i].Equals(b.Elements[i]) {
				return false
			}
		}
		return true
	case ObjectValueKind:
		a, b := v.Object, other.Object
		if a == b {
			return true
		}
		if a == nil || b == nil || a.Len() != b.Len() {
			return false
		}
		for _, key := range a.Keys() {
			av, _ := a.Get(key)
			bv, ok := b.Get(key)
			if !ok || !av.Equals(bv) {
				return false
			}
		}
		return true
	default:
		// Functions and builtins are never equal, even to themselves, in
		// keeping with the original's std::variant comparison having no
		// alternative for callables.
		return false
	}
}
