package typeset

import "reflect"

// Duplicate reports the first pair of positions holding the same type.
// Returns (-1, -1, false) when all entries are distinct.
func Duplicate(types []reflect.Type) (int, int, bool) {
	seen := make(map[reflect.Type]int, len(types))
	for i, t := range types {
		if first, ok := seen[t]; ok {
			return first, i, true
		}
		seen[t] = i
	}
	return -1, -1, false
}

// IndexOf returns the position of t in types. The comma-ok result is false
// when t does not appear. Lists are assumed duplicate-free, so the first
// match is the only match.
func IndexOf(t reflect.Type, types []reflect.Type) (int, bool) {
	for i, candidate := range types {
		if candidate == t {
			return i, true
		}
	}
	return -1, false
}

// At returns the type at position i, comma-ok on bounds.
func At(i int, types []reflect.Type) (reflect.Type, bool) {
	if i < 0 || i >= len(types) {
		return nil, false
	}
	return types[i], true
}
