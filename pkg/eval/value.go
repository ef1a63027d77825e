package eval

// truthy reports a value's truthiness: absent, an empty sequence, an empty
// map, an empty string, or numeric zero is false; everything else is true.
func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// toSequence normalizes a scalar or absent value into a slice, matching
// filters.py's "if not isinstance(val, (list, ListIP)): val = [val]".
// A nil input becomes a nil slice, not a one-element slice holding nil.
func toSequence(v interface{}) []interface{} {
	if v == nil {
		return nil
	}
	if seq, ok := v.([]interface{}); ok {
		return seq
	}
	return []interface{}{v}
}

// unwrapSingleton collapses a one-element vector result back to its
// scalar, matching evaluate_binop_math's "if len(vect) > 1: return vect;
// return vect[0]".
func unwrapSingleton(v []interface{}) interface{} {
	if len(v) == 1 {
		return v[0]
	}
	return v
}
