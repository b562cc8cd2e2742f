package typeset

import (
	"reflect"
	"testing"
)

var (
	boolType    = reflect.TypeFor[bool]()
	int8Type    = reflect.TypeFor[int8]()
	int32Type   = reflect.TypeFor[int32]()
	float32Type = reflect.TypeFor[float32]()
	float64Type = reflect.TypeFor[float64]()
	stringType  = reflect.TypeFor[string]()
)

func TestDuplicate(t *testing.T) {
	tests := []struct {
		name  string
		types []reflect.Type
		first int
		dup   int
		found bool
	}{
		{"empty", nil, -1, -1, false},
		{"single", []reflect.Type{boolType}, -1, -1, false},
		{"distinct", []reflect.Type{boolType, int8Type, int32Type, float32Type, float64Type}, -1, -1, false},
		{"adjacent_dup", []reflect.Type{boolType, boolType, int32Type}, 0, 1, true},
		{"spread_dup", []reflect.Type{boolType, float32Type, int32Type, float32Type, float64Type}, 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, dup, found := Duplicate(tt.types)
			if found != tt.found || first != tt.first || dup != tt.dup {
				t.Errorf("Duplicate() = (%d, %d, %v), want (%d, %d, %v)",
					first, dup, found, tt.first, tt.dup, tt.found)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	list := []reflect.Type{boolType, int8Type, int32Type, float32Type}

	tests := []struct {
		name string
		typ  reflect.Type
		idx  int
		ok   bool
	}{
		{"first", boolType, 0, true},
		{"second", int8Type, 1, true},
		{"third", int32Type, 2, true},
		{"last", float32Type, 3, true},
		{"absent", stringType, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := IndexOf(tt.typ, list)
			if idx != tt.idx || ok != tt.ok {
				t.Errorf("IndexOf(%s) = (%d, %v), want (%d, %v)", tt.typ, idx, ok, tt.idx, tt.ok)
			}
		})
	}
}

func TestAt(t *testing.T) {
	list := []reflect.Type{boolType, int8Type, int32Type}

	for i, want := range list {
		got, ok := At(i, list)
		if !ok || got != want {
			t.Errorf("At(%d) = (%v, %v), want (%v, true)", i, got, ok, want)
		}
	}

	if _, ok := At(-1, list); ok {
		t.Error("At(-1) should be out of bounds")
	}
	if _, ok := At(3, list); ok {
		t.Error("At(len) should be out of bounds")
	}
}
