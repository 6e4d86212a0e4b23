package layout

// AlignTo rounds offset up to the next multiple of align. align must be a
// power of two; zero leaves offset unchanged.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize returns the bytes needed to tag numCases alternatives.
func DiscriminantSize(numCases int) uintptr {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}
