package variant

import (
	"reflect"

	"github.com/wippyai/variant/errors"
)

// None is the sentinel discriminant of a container holding no value.
const None = ^uint32(0)

// Variant holds at most one live value of one of its schema's
// alternatives. The zero Variant is not usable; obtain one from
// (*Schema).New or Of.
//
// A Variant has single-threaded value semantics: no operation blocks, and
// concurrent mutation (or a read concurrent with a write) requires
// external synchronization, exactly like any non-atomic value. Pointers
// returned by accessors are no longer valid once the container is
// subsequently mutated by Set, CopyFrom, MoveFrom, Take, or Reset.
type Variant struct {
	schema *Schema
	cell   any
	idx    uint32
}

// Schema returns the schema this container is bound to.
func (v *Variant) Schema() *Schema {
	return v.schema
}

// Index returns the current discriminant, None when empty.
func (v *Variant) Index() uint32 {
	return v.idx
}

// IsEmpty reports whether no alternative is held.
func (v *Variant) IsEmpty() bool {
	return v.idx == None
}

// TryGetAt returns the stored value (boxed as *T for the alternative at
// position i) when position i is active. The false result is the only
// failure signal.
func (v *Variant) TryGetAt(i uint32) (any, bool) {
	if i != v.idx || i >= uint32(len(v.schema.alts)) {
		return nil, false
	}
	return v.cell, true
}

// GetAt returns the stored value (boxed as *T for the alternative at
// position i), failing with a bad-access error when position i is not
// active and an out-of-range error when i is not a valid position.
func (v *Variant) GetAt(i uint32) (any, error) {
	if i >= uint32(len(v.schema.alts)) {
		return nil, errors.OutOfRange(errors.PhaseAccess, i, len(v.schema.alts))
	}
	if i != v.idx {
		return nil, errors.BadAccess(i, v.idx)
	}
	return v.cell, nil
}

// Reset destroys the stored value, if any, and leaves the container
// empty. Resetting an empty container is a no-op. This is the explicit
// teardown of the container; the destroy table entry for the active
// alternative runs exactly once.
func (v *Variant) Reset() {
	if v.idx == None {
		return
	}
	v.schema.destroyTab[v.idx](v.cell)
	v.cell = nil
	v.idx = None
}

// replace is the single mutation primitive every setter goes through:
// destroy the current value, then construct the new one. A construction
// failure leaves the container empty, never with a discriminant naming an
// alternative that was not constructed; the discriminant is committed
// only after construct succeeds.
func (v *Variant) replace(i uint32, construct func() (any, error)) (any, error) {
	v.Reset()
	box, err := construct()
	if err != nil {
		return nil, err
	}
	v.cell = box
	v.idx = i
	return box, nil
}

// Clone copy-constructs a new container from v. The result holds the same
// alternative with an equal value; v is left unmodified. The copy table
// entry may fail for alternatives with a fallible copier.
func (v *Variant) Clone() (*Variant, error) {
	out := v.schema.New()
	if v.idx == None {
		return out, nil
	}
	box, err := v.schema.copyTab[v.idx](v.cell)
	if err != nil {
		return nil, err
	}
	out.cell = box
	out.idx = v.idx
	return out, nil
}

// Take move-constructs a new container from v. The result holds v's
// former value; v becomes empty immediately, without running its destroy
// entry for the moved-out value.
func (v *Variant) Take() *Variant {
	out := v.schema.New()
	if v.idx == None {
		return out
	}
	out.cell = v.schema.moveTab[v.idx](v.cell)
	out.idx = v.idx
	v.cell = nil
	v.idx = None
	return out
}

// CopyFrom replaces v's value with a copy of src's. An empty source
// empties v. Both containers must share a schema; src is left unmodified.
func (v *Variant) CopyFrom(src *Variant) error {
	if v == src {
		return nil
	}
	if v.schema != src.schema {
		return errors.SchemaMismatch(errors.PhaseAssign)
	}
	if src.idx == None {
		v.Reset()
		return nil
	}
	i := src.idx
	_, err := v.replace(i, func() (any, error) {
		return v.schema.copyTab[i](src.cell)
	})
	return err
}

// MoveFrom replaces v's value with src's, leaving src empty. An empty
// source empties v. Both containers must share a schema.
func (v *Variant) MoveFrom(src *Variant) error {
	if v == src {
		return nil
	}
	if v.schema != src.schema {
		return errors.SchemaMismatch(errors.PhaseAssign)
	}
	if src.idx == None {
		v.Reset()
		return nil
	}
	i := src.idx
	box := v.schema.moveTab[i](src.cell)
	src.cell = nil
	src.idx = None
	v.Reset()
	v.cell = box
	v.idx = i
	return nil
}

// Of builds a container holding value, the value-construction form.
// Equivalent to (*Schema).New followed by Set.
func Of[T any](s *Schema, value T) (*Variant, error) {
	v := s.New()
	if _, err := Set(v, value); err != nil {
		return nil, err
	}
	return v, nil
}

// Holds reports whether the alternative T is active. T should be one of
// the schema's alternatives; for any other type Holds is always false.
func Holds[T any](v *Variant) bool {
	i, ok := v.schema.Position(reflect.TypeFor[T]())
	return ok && i == v.idx
}

// TryGet returns a pointer to the stored value when the alternative T is
// active. Never fails; the false result is the only failure signal.
func TryGet[T any](v *Variant) (*T, bool) {
	i, ok := v.schema.Position(reflect.TypeFor[T]())
	if !ok || i != v.idx {
		return nil, false
	}
	return v.cell.(*T), true
}

// Get returns a pointer to the stored value of alternative T, failing
// with a bad-access error carrying the requested and active discriminants
// when T is not the active alternative, and with a not-alternative error
// when T is outside the schema.
func Get[T any](v *Variant) (*T, error) {
	t := reflect.TypeFor[T]()
	i, ok := v.schema.Position(t)
	if !ok {
		return nil, errors.NotAlternative(errors.PhaseAccess, t.String())
	}
	if i != v.idx {
		return nil, errors.BadAccess(i, v.idx)
	}
	return v.cell.(*T), nil
}

// Set replaces the active value with a new value of alternative T and
// returns a pointer to it. Any current value is destroyed exactly once
// first. If T's validator rejects the value the container is left empty
// and the error is returned.
func Set[T any](v *Variant, value T) (*T, error) {
	t := reflect.TypeFor[T]()
	i, ok := v.schema.Position(t)
	if !ok {
		return nil, errors.NotAlternative(errors.PhaseAssign, t.String())
	}
	box, err := v.replace(i, func() (any, error) {
		return v.schema.constructTab[i](value)
	})
	if err != nil {
		return nil, err
	}
	return box.(*T), nil
}
