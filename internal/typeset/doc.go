// Package typeset provides operations over ordered lists of alternative types.
//
// A schema's alternative list is an ordered []reflect.Type with no
// duplicates. This package answers the three questions the container core
// needs about such a list:
//
//   - Duplicate: does the list contain the same type twice?
//   - IndexOf: at which position does a given type appear?
//   - At: which type occupies a given position?
//
// All functions are pure lookups over the slice; none of them allocate.
// This package is internal to the variant library.
package typeset
