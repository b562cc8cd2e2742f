package layout

import "reflect"

// Info describes a size and alignment requirement in bytes.
type Info struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout of a single alternative type.
func Of(t reflect.Type) Info {
	return Info{Size: t.Size(), Align: uintptr(t.Align())}
}

// Max returns the requirement satisfying every entry: the running maximum
// of sizes and alignments.
func Max(infos []Info) Info {
	out := Info{Size: 0, Align: 1}
	for _, info := range infos {
		if info.Size > out.Size {
			out.Size = info.Size
		}
		if info.Align > out.Align {
			out.Align = info.Align
		}
	}
	return out
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize: 1 byte for <=256 alternatives, 2 for <=65536, else 4.
func DiscriminantSize(numAlts int) uintptr {
	if numAlts <= 256 {
		return 1
	} else if numAlts <= 65536 {
		return 2
	}
	return 4
}

// Cell returns the footprint of a discriminant followed by a payload
// region large enough for any of the given alternatives.
func Cell(numAlts int, infos []Info) Info {
	payload := Max(infos)
	disc := DiscriminantSize(numAlts)

	align := payload.Align
	if disc > align {
		align = disc
	}

	payloadOffset := AlignTo(disc, payload.Align)
	return Info{
		Size:  AlignTo(payloadOffset+payload.Size, align),
		Align: align,
	}
}
