package variant

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
	"github.com/wippyai/variant/internal/layout"
	"github.com/wippyai/variant/internal/typeset"
)

// Schema is a validated, immutable alternative list. It owns the three
// dispatch tables (destroy, copy-construct, move-construct) plus the
// construct-from-value table behind Set, each with one entry per
// alternative position. Every type-specific action a Variant performs is
// reached by indexing these tables with the current discriminant.
//
// A Schema is safe for concurrent use once built.
type Schema struct {
	alts      []Alternative
	types     []reflect.Type
	positions map[reflect.Type]uint32

	constructTab []func(value any) (any, error)
	destroyTab   []func(box any)
	copyTab      []func(box any) (any, error)
	moveTab      []func(box any) any

	payload layout.Info
	cell    layout.Info
}

// Layout is the canonical storage footprint of a schema: a discriminant
// followed by a payload region sized and aligned for the largest
// alternative. Go's runtime manages the container's actual storage; these
// figures describe the equivalent in-place cell.
type Layout struct {
	PayloadSize      uintptr
	PayloadAlign     uintptr
	DiscriminantSize uintptr
	CellSize         uintptr
	CellAlign        uintptr
}

// New validates the alternative list and compiles a schema from it.
// The list must be non-empty, free of duplicate types, and small enough
// that no position collides with the None sentinel.
func New(alts ...Alternative) (*Schema, error) {
	if len(alts) == 0 {
		return nil, errors.EmptySchema()
	}
	if uint64(len(alts)) >= uint64(None) {
		return nil, errors.TooManyAlternatives(len(alts))
	}

	types := make([]reflect.Type, len(alts))
	infos := make([]layout.Info, len(alts))
	for i, alt := range alts {
		types[i] = alt.typ
		infos[i] = alt.info
	}

	if first, second, ok := typeset.Duplicate(types); ok {
		return nil, errors.Duplicate(types[first].String(), first, second)
	}

	s := &Schema{
		alts:         alts,
		types:        types,
		positions:    make(map[reflect.Type]uint32, len(alts)),
		constructTab: make([]func(any) (any, error), len(alts)),
		destroyTab:   make([]func(any), len(alts)),
		copyTab:      make([]func(any) (any, error), len(alts)),
		moveTab:      make([]func(any) any, len(alts)),
		payload:      layout.Max(infos),
		cell:         layout.Cell(len(alts), infos),
	}
	for i, alt := range alts {
		s.positions[alt.typ] = uint32(i)
		s.constructTab[i] = alt.construct
		s.destroyTab[i] = alt.destroy
		s.copyTab[i] = alt.clone
		s.moveTab[i] = alt.move
	}

	Logger().Debug("schema compiled",
		zap.Int("alternatives", len(alts)),
		zap.Uint64("payload_size", uint64(s.payload.Size)),
		zap.Uint64("payload_align", uint64(s.payload.Align)),
	)

	return s, nil
}

// MustNew is New, panicking on an invalid alternative list. Intended for
// schemas fixed at program start.
func MustNew(alts ...Alternative) *Schema {
	s, err := New(alts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of alternatives.
func (s *Schema) Len() int {
	return len(s.alts)
}

// TypeAt returns the type occupying position i, comma-ok on bounds.
func (s *Schema) TypeAt(i uint32) (reflect.Type, bool) {
	return typeset.At(int(i), s.types)
}

// Position returns the unique position of t in the alternative list.
func (s *Schema) Position(t reflect.Type) (uint32, bool) {
	i, ok := s.positions[t]
	return i, ok
}

// Layout returns the schema's canonical storage footprint.
func (s *Schema) Layout() Layout {
	return Layout{
		PayloadSize:      s.payload.Size,
		PayloadAlign:     s.payload.Align,
		DiscriminantSize: layout.DiscriminantSize(len(s.alts)),
		CellSize:         s.cell.Size,
		CellAlign:        s.cell.Align,
	}
}

// New returns an empty container bound to this schema.
func (s *Schema) New() *Variant {
	return &Variant{schema: s, idx: None}
}
