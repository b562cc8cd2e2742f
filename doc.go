// Package variant provides a closed-set tagged-union container.
//
// A Schema fixes an ordered list of distinct alternative types once, up
// front. A Variant built from that schema holds at most one live value of
// exactly one alternative at a time, tracks the live alternative with a
// runtime discriminant, and offers type-safe and position-safe access,
// safe replacement, and copy/move semantics — without dynamic dispatch
// through an interface hierarchy.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	variant/             Root package: Schema, Variant, Alternative, generic accessors
//	├── errors/          Structured error types for debugging
//	├── witschema/       Schema construction from Component Model variant definitions
//	├── internal/
//	│   ├── layout/      Storage size/alignment calculations
//	│   └── typeset/     Alternative list lookups and duplicate detection
//	└── cmd/inspect/     CLI for exploring schema layouts
//
// # Quick Start
//
// Fix the alternative list, then move values through the container:
//
//	schema := variant.MustNew(
//	    variant.Alt[int](),
//	    variant.Alt[string](),
//	)
//
//	v, err := variant.Of(schema, 42)
//	n, err := variant.Get[int](v)     // *n == 42
//	variant.Set(v, "hi")              // destroys 42, stores "hi"
//	s, ok := variant.TryGet[string](v) // *s == "hi", ok
//	_, err = variant.Get[int](v)      // bad_access: requested 0, active 1
//
// # Discriminants and Dispatch
//
// Which alternative is live is a single integer, Index; None means empty.
// Each schema compiles one dispatch table entry per alternative for
// destroy, copy-construct, and move-construct. The container core never
// branches on the stored value's type: every type-specific action is an
// indexed table call, so the core is written once, independent of the
// alternative count and of the concrete types.
//
// # Lifetime Guarantees
//
// Replacement follows a strict destroy-then-construct discipline through
// a single primitive: the old value's destructor (see WithDestructor)
// runs exactly once before the new value exists, and a failed
// construction always leaves the container empty, never with a
// discriminant naming an alternative that was not constructed. Moving out
// of a container empties it without re-running the destructor for the
// moved value.
//
// # Thread Safety
//
// Schema is immutable and safe for concurrent use. Variant is NOT
// thread-safe: it behaves like any ordinary non-atomic value and must be
// confined to one goroutine or externally synchronized.
package variant
