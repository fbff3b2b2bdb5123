package pdo

// BindMap maps placeholder names (without the leading colon) to the values
// bound at execution time. Insertion order is irrelevant; it may be empty.
type BindMap map[string]any

// BindArgs is the normalized bind container every statement executes with.
// Named and Positional are mutually exclusive in practice: statements built
// by this package use named placeholders, while raw statements passed to Run
// may use either style.
type BindArgs struct {
	Named      BindMap
	Positional []any
}

// IsEmpty reports whether no parameters are bound.
func (a BindArgs) IsEmpty() bool {
	return len(a.Named) == 0 && len(a.Positional) == 0
}

// NormalizeBind coerces caller-supplied bind values into BindArgs. Maps pass
// through as named parameters, nil and the empty string become an empty
// container, a slice becomes positional arguments, and any other scalar is
// wrapped as a single positional value. It never fails, so statements with
// no parameters flow through the same execution path as bound ones, and it
// is idempotent: normalizing a BindArgs returns it unchanged.
func NormalizeBind(bind any) BindArgs {
	switch v := bind.(type) {
	case nil:
		return BindArgs{}
	case BindArgs:
		return v
	case BindMap:
		return BindArgs{Named: v}
	case map[string]any:
		return BindArgs{Named: v}
	case []any:
		return BindArgs{Positional: v}
	case string:
		if v == "" {
			return BindArgs{}
		}
		return BindArgs{Positional: []any{v}}
	default:
		return BindArgs{Positional: []any{v}}
	}
}

// merged returns a single named map combining the receiver's named binds
// with extra, which wins on key collisions. The receiver is not modified.
func (a BindArgs) merged(extra BindMap) BindMap {
	out := make(BindMap, len(a.Named)+len(extra))
	for k, v := range a.Named {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
