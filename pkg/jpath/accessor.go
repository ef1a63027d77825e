package jpath

// Values returns every value reachable at path within structure. It walks
// the path chunk by chunk, keeping a frontier of currently-active nodes and
// swapping it for the next frontier after each chunk — deliberately
// iterative rather than recursive, so paths of arbitrary depth cost no
// extra stack. Mismatched shapes and missing keys are silently dropped,
// never reported as errors: Values is the read side of the API and is
// total over any JSON-like structure.
func Values(structure interface{}, path string) ([]interface{}, error) {
	chunks, err := ParseCached(path)
	if err != nil {
		return nil, err
	}
	return valuesFor(structure, chunks), nil
}

func valuesFor(structure interface{}, chunks Path) []interface{} {
	frontier := []interface{}{structure}
	var next []interface{}

	for _, chunk := range chunks {
		for _, node := range frontier {
			m, ok := node.(map[string]interface{})
			if !ok {
				continue
			}
			val, present := m[chunk.Name]
			if !present {
				continue
			}

			if chunk.HasIndex() {
				list, ok := val.([]interface{})
				if !ok || len(list) == 0 {
					continue
				}
				switch chunk.Index {
				case IndexAll:
					next = append(next, list...)
				case IndexLast:
					next = append(next, list[len(list)-1])
				case IndexAt:
					if chunk.Value >= 0 && chunk.Value < len(list) {
						next = append(next, list[chunk.Value])
					}
				}
				continue
			}

			if list, ok := val.([]interface{}); ok {
				next = append(next, list...)
			} else {
				next = append(next, val)
			}
		}

		frontier = next
		next = nil
	}

	return frontier
}

// Value returns the first value at path, or (nil, false) if path matches
// nothing within structure.
func Value(structure interface{}, path string) (interface{}, bool) {
	values, err := Values(structure, path)
	if err != nil || len(values) == 0 {
		return nil, false
	}
	return values[0], true
}

// Exists reports whether path resolves to at least one value within
// structure.
func Exists(structure interface{}, path string) bool {
	_, ok := Value(structure, path)
	return ok
}

// SetResult reports what Set actually did.
type SetResult int

const (
	// Set means the value was written (created or overwritten).
	Set SetResult = iota
	// Exists means overwrite was disabled and a value was already present.
	Exists
	// Duplicate means unique was enabled and the value was already a
	// member of the target list.
	Duplicate
)

// SetOptions controls Set's behavior at the final path chunk.
type SetOptions struct {
	// Overwrite allows replacing an existing value (default semantics).
	// When false, Set reports Exists instead of replacing.
	Overwrite bool
	// Unique, when set and the final chunk targets a list via an
	// out-of-range or '[*]' index, skips appending a value already
	// present in that list and reports Duplicate instead.
	Unique bool
}

// DefaultSetOptions matches jpath's historical default: overwrite enabled,
// uniqueness not enforced.
func DefaultSetOptions() SetOptions {
	return SetOptions{Overwrite: true}
}

// Set writes value at path within structure, creating intermediate maps
// and lists as needed, and auto-appending to a list when an indexed chunk
// names a position beyond the list's current end. structure must be a
// map[string]interface{} (or a pointer-free container reachable from one);
// Set raises ShapeError when some intermediate or terminal node conflicts
// with what the path requires (e.g. an indexed chunk landing on a scalar).
func Set(structure map[string]interface{}, path string, value interface{}, opts SetOptions) (SetResult, error) {
	chunks, err := ParseCached(path)
	if err != nil {
		return Set, err
	}
	if len(chunks) == 0 {
		return Set, nil
	}

	last := len(chunks) - 1
	var current interface{} = structure

	for i, chunk := range chunks {
		m, ok := current.(map[string]interface{})
		if !ok {
			return Set, &ShapeError{Path: shapePath(chunks, i), Expected: "map", Value: current}
		}

		if chunk.HasIndex() {
			list, ok := m[chunk.Name].([]interface{})
			if _, present := m[chunk.Name]; !present {
				list = []interface{}{}
				m[chunk.Name] = list
			} else if !ok {
				return Set, &ShapeError{Path: shapePath(chunks, i), Expected: "list", Value: m[chunk.Name]}
			}

			if i != last {
				idx, inRange := resolveReadIndex(chunk, list)
				if !inRange {
					list = append(list, map[string]interface{}{})
					m[chunk.Name] = list
					current = list[len(list)-1]
				} else {
					current = list[idx]
				}
				continue
			}

			idx, inRange := resolveWriteIndex(chunk, list)
			if inRange {
				if opts.Overwrite || isZero(list[idx]) {
					list[idx] = value
					return Set, nil
				}
				return Exists, nil
			}

			if opts.Unique && containsValue(list, value) {
				return Duplicate, nil
			}
			m[chunk.Name] = append(list, value)
			return Set, nil
		}

		if i != last {
			next, present := m[chunk.Name]
			if !present {
				next = map[string]interface{}{}
				m[chunk.Name] = next
			}
			nextMap, ok := next.(map[string]interface{})
			if !ok {
				return Set, &ShapeError{Path: shapePath(chunks, i), Expected: "map", Value: next}
			}
			current = nextMap
			continue
		}

		if _, present := m[chunk.Name]; opts.Overwrite || !present {
			m[chunk.Name] = value
			return Set, nil
		}
		return Exists, nil
	}

	return Set, nil
}

// resolveReadIndex resolves a non-terminal indexed chunk against an
// existing list, returning the 0-based position to descend into and
// whether that position exists. '[#]' descends into the last element,
// auto-appending one if the list is empty. '[*]' never resolves to an
// existing position: a mid-path '*' always appends a new element, the
// same as it does at the terminal chunk.
func resolveReadIndex(chunk Chunk, list []interface{}) (int, bool) {
	switch chunk.Index {
	case IndexAt:
		return chunk.Value, chunk.Value >= 0 && chunk.Value < len(list)
	case IndexAll:
		return -1, false
	default: // IndexLast
		return len(list) - 1, len(list) > 0
	}
}

// resolveWriteIndex resolves a terminal indexed chunk, returning the
// 0-based position to overwrite and whether that position exists. '[*]'
// never resolves to an existing position: it always appends.
func resolveWriteIndex(chunk Chunk, list []interface{}) (int, bool) {
	switch chunk.Index {
	case IndexAt:
		return chunk.Value, chunk.Value >= 0 && chunk.Value < len(list)
	case IndexLast:
		return len(list) - 1, len(list) > 0
	default: // IndexAll
		return -1, false
	}
}

func isZero(v interface{}) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case float64:
		return x == 0
	}
	return false
}

func containsValue(list []interface{}, value interface{}) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// Unset deletes the value(s) at path within structure. '[*]' deletes the
// whole named list; an out-of-range index is silently ignored (matching
// the read side's total semantics) rather than treated as an error.
func Unset(structure map[string]interface{}, path string) error {
	chunks, err := ParseCached(path)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return nil
	}

	last := len(chunks) - 1
	frontier := []map[string]interface{}{structure}

	for i, chunk := range chunks {
		var next []map[string]interface{}

		for _, node := range frontier {
			if chunk.HasIndex() {
				val, present := node[chunk.Name]
				if !present {
					continue
				}
				list, ok := val.([]interface{})
				if !ok {
					return &ShapeError{Path: shapePath(chunks, i), Expected: "list", Value: val}
				}

				if i != last {
					switch chunk.Index {
					case IndexAll:
						for _, item := range list {
							if m, ok := item.(map[string]interface{}); ok {
								next = append(next, m)
							}
						}
					default:
						idx, inRange := resolveReadIndex(chunk, list)
						if inRange {
							if m, ok := list[idx].(map[string]interface{}); ok {
								next = append(next, m)
							}
						}
					}
					continue
				}

				switch chunk.Index {
				case IndexAll:
					delete(node, chunk.Name)
				default:
					idx, inRange := resolveWriteIndex(chunk, list)
					if inRange {
						node[chunk.Name] = append(list[:idx:idx], list[idx+1:]...)
					}
				}
				continue
			}

			if i != last {
				val, present := node[chunk.Name]
				if !present {
					continue
				}
				if list, ok := val.([]interface{}); ok {
					for _, item := range list {
						if m, ok := item.(map[string]interface{}); ok {
							next = append(next, m)
						}
					}
					continue
				}
				m, ok := val.(map[string]interface{})
				if !ok {
					return &ShapeError{Path: shapePath(chunks, i), Expected: "map", Value: val}
				}
				next = append(next, m)
				continue
			}

			delete(node, chunk.Name)
		}

		frontier = next
	}

	return nil
}
