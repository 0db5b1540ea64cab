package polonio

// evalAssignment implements both plain (`=`) and compound (`+= -= *= /= %=
// ..=`) assignment to an Identifier or Index target (spec.md §4.3). The
// parser has already rejected every other target shape.
func (e *Evaluator) evalAssignment(a *Assignment) (Value, error) {
	rhs, err := e.EvalExpr(a.Value)
	if err != nil {
		return Value{}, err
	}

	switch target := a.Target.(type) {
	case *Identifier:
		return e.assignIdentifier(target, a.Op, rhs, a.Loc())
	case *Index:
		return e.assignIndex(target, a.Op, rhs, a.Loc())
	default:
		return Value{}, e.runtimeErr("invalid assignment target", a.Loc())
	}
}

func (e *Evaluator) assignIdentifier(target *Identifier, op string, rhs Value, loc Location) (Value, error) {
	if op == "=" {
		e.env.Assign(target.Name, rhs)
		return rhs, nil
	}
	current, ok := e.env.Find(target.Name)
	if !ok {
		return Value{}, e.runtimeErr("undefined variable: "+target.Name, target.Loc())
	}
	updated, err := e.applyCompoundOp(op, current, rhs, loc)
	if err != nil {
		return Value{}, err
	}
	e.env.Assign(target.Name, updated)
	return updated, nil
}

func (e *Evaluator) assignIndex(target *Index, op string, rhs Value, loc Location) (Value, error) {
	collection, err := e.EvalExpr(target.Object)
	if err != nil {
		return Value{}, err
	}
	idx, err := e.EvalExpr(target.Index)
	if err != nil {
		return Value{}, err
	}

	value := rhs
	if op != "=" {
		current, err := e.indexInto(collection, idx, loc)
		if err != nil {
			return Value{}, err
		}
		value, err = e.applyCompoundOp(op, current, rhs, loc)
		if err != nil {
			return Value{}, err
		}
	}

	switch collection.Kind {
	case ArrayValueKind:
		i, err := requireArrayIndex(idx)
		if err != nil {
			return Value{}, e.runtimeErr(err.Error(), loc)
		}
		elements := collection.Array.Elements
		switch {
		case i < len(elements):
			elements[i] = value
		case i == len(elements):
			collection.Array.Elements = append(elements, value)
		default:
			return Value{}, e.runtimeErr("array index out of range", loc)
		}
		return value, nil
	case ObjectValueKind:
		if idx.Kind != StringValueKind {
			return Value{}, e.runtimeErr("object keys must be strings", loc)
		}
		collection.Object.Set(idx.Str, value)
		return value, nil
	default:
		return Value{}, e.runtimeErr("indexing only supported on arrays and objects", loc)
	}
}

// applyCompoundOp reads current OP rhs for a compound assignment, mapping
// `..=` onto the concat operator and the rest onto the plain arithmetic
// operator with the trailing `=` stripped.
func (e *Evaluator) applyCompoundOp(op string, current, rhs Value, loc Location) (Value, error) {
	plainOp := op[:len(op)-1]
	return e.applyBinary(plainOp, current, rhs, loc)
}
