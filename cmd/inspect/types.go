package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wippyai/variant"
)

// builtins maps WIT-flavored type names to ready-made alternatives.
// Note char is an alias of s32 on the Go side, so listing both in one
// schema is rejected as a duplicate.
var builtins = map[string]variant.Alternative{
	"bool":   variant.Alt[bool](),
	"u8":     variant.Alt[uint8](),
	"s8":     variant.Alt[int8](),
	"u16":    variant.Alt[uint16](),
	"s16":    variant.Alt[int16](),
	"u32":    variant.Alt[uint32](),
	"s32":    variant.Alt[int32](),
	"u64":    variant.Alt[uint64](),
	"s64":    variant.Alt[int64](),
	"f32":    variant.Alt[float32](),
	"f64":    variant.Alt[float64](),
	"char":   variant.Alt[rune](),
	"string": variant.Alt[string](),
	"bytes":  variant.Alt[[]byte](),
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildSchema compiles a schema from a comma-separated alternative list.
func buildSchema(spec string) (*variant.Schema, []string, error) {
	parts := strings.Split(spec, ",")
	alts := make([]variant.Alternative, 0, len(parts))
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		alt, ok := builtins[name]
		if !ok {
			return nil, nil, fmt.Errorf("unknown type %q (supported: %s)", name, strings.Join(builtinNames(), ", "))
		}
		alts = append(alts, alt)
		names = append(names, name)
	}

	schema, err := variant.New(alts...)
	if err != nil {
		return nil, nil, err
	}
	return schema, names, nil
}
