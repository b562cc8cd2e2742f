package witschema

import (
	stderrors "errors"
	"reflect"
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

func shapeDef() *wit.Variant {
	return &wit.Variant{Cases: []wit.Case{
		{Name: "count", Type: wit.U32{}},
		{Name: "label", Type: wit.String{}},
		{Name: "ratio", Type: wit.F64{}},
	}}
}

func TestBind(t *testing.T) {
	schema, err := Bind(shapeDef(), map[string]variant.Alternative{
		"count": variant.Alt[uint32](),
		"label": variant.Alt[string](),
		"ratio": variant.Alt[float64](),
	})
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if schema.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", schema.Len())
	}

	// positions follow case declaration order
	wantTypes := []reflect.Type{
		reflect.TypeFor[uint32](),
		reflect.TypeFor[string](),
		reflect.TypeFor[float64](),
	}
	for i, want := range wantTypes {
		got, ok := schema.TypeAt(uint32(i))
		if !ok || got != want {
			t.Errorf("TypeAt(%d) = %v, want %v", i, got, want)
		}
	}

	v, err := variant.Of(schema, "hello")
	if err != nil {
		t.Fatalf("Of failed: %v", err)
	}
	if v.Index() != 1 {
		t.Errorf("Index() = %d, want 1", v.Index())
	}
}

func TestBind_MissingCase(t *testing.T) {
	_, err := Bind(shapeDef(), map[string]variant.Alternative{
		"count": variant.Alt[uint32](),
		"label": variant.Alt[string](),
	})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseSchema, Kind: errors.KindMissingCase}) {
		t.Fatalf("want missing_case error, got %v", err)
	}
}

func TestBind_UnknownCase(t *testing.T) {
	_, err := Bind(shapeDef(), map[string]variant.Alternative{
		"count":  variant.Alt[uint32](),
		"label":  variant.Alt[string](),
		"ratio":  variant.Alt[float64](),
		"weight": variant.Alt[int](),
	})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseSchema, Kind: errors.KindUnknownCase}) {
		t.Fatalf("want unknown_case error, got %v", err)
	}
}

func TestBind_DuplicateGoTypes(t *testing.T) {
	def := &wit.Variant{Cases: []wit.Case{
		{Name: "a", Type: wit.U32{}},
		{Name: "b", Type: wit.U32{}},
	}}

	_, err := Bind(def, map[string]variant.Alternative{
		"a": variant.Alt[uint32](),
		"b": variant.Alt[uint32](),
	})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseSchema, Kind: errors.KindDuplicate}) {
		t.Fatalf("want duplicate_alternative error, got %v", err)
	}
}

func TestCaseIndex(t *testing.T) {
	def := shapeDef()

	tests := []struct {
		name string
		idx  uint32
		ok   bool
	}{
		{"count", 0, true},
		{"label", 1, true},
		{"ratio", 2, true},
		{"weight", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := CaseIndex(def, tt.name)
			if idx != tt.idx || ok != tt.ok {
				t.Errorf("CaseIndex(%q) = (%d, %v), want (%d, %v)", tt.name, idx, ok, tt.idx, tt.ok)
			}
		})
	}
}
