package witschema

import (
	"sort"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/errors"
)

// Bind compiles a schema from a WIT variant definition. Alternatives are
// taken from cases by WIT case name and laid out in declaration order, so
// positions match the variant's Canonical ABI case indices. Each case
// must have exactly one registered alternative.
func Bind(def *wit.Variant, cases map[string]variant.Alternative) (*variant.Schema, error) {
	alts := make([]variant.Alternative, 0, len(def.Cases))
	known := make(map[string]bool, len(def.Cases))

	for _, c := range def.Cases {
		known[c.Name] = true
		alt, ok := cases[c.Name]
		if !ok {
			return nil, errors.MissingCase(c.Name)
		}
		alts = append(alts, alt)
	}

	if len(cases) > len(def.Cases) {
		extras := make([]string, 0, len(cases))
		for name := range cases {
			if !known[name] {
				extras = append(extras, name)
			}
		}
		sort.Strings(extras)
		return nil, errors.UnknownCase(extras[0])
	}

	return variant.New(alts...)
}

// CaseIndex returns the discriminant assigned to the named case.
func CaseIndex(def *wit.Variant, name string) (uint32, bool) {
	for i, c := range def.Cases {
		if c.Name == name {
			return uint32(i), true
		}
	}
	return 0, false
}
