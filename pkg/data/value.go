package data

// Map is a mapping with canonical symbolic keys.
type Map map[Symbol]any

// Get returns the value stored under key.
func (m Map) Get(key Symbol) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// SymbolizeKeys walks v and converts the keys of every mapping, at any
// depth, into Symbols. Sequences are traversed but otherwise left alone;
// scalars are returned as-is.
func SymbolizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(Map, len(val))
		for k, child := range val {
			out[ToSymbol(k)] = SymbolizeKeys(child)
		}
		return out
	case map[any]any:
		out := make(Map, len(val))
		for k, child := range val {
			out[ToSymbol(k)] = SymbolizeKeys(child)
		}
		return out
	case Map:
		out := make(Map, len(val))
		for k, child := range val {
			out[k] = SymbolizeKeys(child)
		}
		return out
	case []any:
		for i, child := range val {
			val[i] = SymbolizeKeys(child)
		}
		return val
	default:
		return v
	}
}

// MergeShallow overlays the top-level keys of overlay onto base and
// reports whether a merge happened. Keys present only in base are kept;
// keys in overlay replace or extend base. Nested mappings are not merged
// recursively.
//
// The merge is performed only when both values are mappings. base is
// modified in place and returned.
func MergeShallow(base, overlay any) (any, bool) {
	baseMap, ok := base.(Map)
	if !ok {
		return base, false
	}
	overlayMap, ok := overlay.(Map)
	if !ok {
		return base, false
	}
	for k, v := range overlayMap {
		baseMap[k] = v
	}
	return baseMap, true
}

// Dig follows keys through nested mappings and returns the value found at
// the end of the chain.
func Dig(v any, keys ...Symbol) (any, bool) {
	current := v
	for _, key := range keys {
		m, ok := current.(Map)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
