// Package layout computes storage layout requirements for alternative lists.
//
// A variant's storage cell must fit any of its alternatives: its payload
// size is the maximum alternative size and its alignment satisfies every
// alternative's alignment. The discriminant that precedes the payload is
// sized by alternative count (1, 2, or 4 bytes).
//
// # Layout Rules
//
//   - Payload: running maximum of size and alignment over the list;
//     the maximum is associative and order-independent.
//   - Discriminant: 1 byte for up to 256 alternatives, 2 for up to
//     65536, 4 otherwise. Alignment equals size.
//   - Cell: discriminant followed by the payload at the next aligned
//     offset, padded out to the cell alignment.
//
// Go's runtime manages the container's actual storage; these figures are
// the schema's canonical footprint, reported through the public Layout
// accessor and consumed by the schema inspector.
//
// This package is internal to the variant library.
package layout
