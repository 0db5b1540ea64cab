package polonio

// Environment is a lexical frame of name->Value bindings with an optional
// parent link (spec.md §3). The root environment lives for the whole
// session; nested environments are created per call frame or loop
// iteration and dropped when the scope exits, unless a closure keeps them
// alive.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment constructs a frame whose lookups fall through to parent
// when non-nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), parent: parent}
}

// Find walks the parent chain looking for name, returning ok=false if no
// frame binds it.
func (e *Environment) Find(name string) (Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.values[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// SetLocal binds name in the current frame, shadowing any outer binding of
// the same name. Re-declaring an existing local is permitted.
func (e *Environment) SetLocal(name string, v Value) {
	e.values[name] = v
}

// Assign mutates the innermost frame that already binds name; if no frame
// binds it, it creates the binding in the current frame.
func (e *Environment) Assign(name string, v Value) {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.values[name]; ok {
			frame.values[name] = v
			return
		}
	}
	e.values[name] = v
}
