// Package witschema builds variant schemas from Component Model variant
// definitions.
//
// A WIT variant is a closed tagged union whose cases are ordered and
// named. Bind maps each case, in declaration order, to a registered Go
// alternative, so the resulting schema's discriminants agree with the
// Canonical ABI's case indices:
//
//	def := &wit.Variant{Cases: []wit.Case{
//	    {Name: "count", Type: wit.U32{}},
//	    {Name: "label", Type: wit.String{}},
//	}}
//
//	schema, err := witschema.Bind(def, map[string]variant.Alternative{
//	    "count": variant.Alt[uint32](),
//	    "label": variant.Alt[string](),
//	})
//
// Every case needs exactly one registered alternative; missing or extra
// registrations fail with structured errors.
package witschema
