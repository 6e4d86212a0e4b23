// Package layout computes storage layouts for alternative lists.
//
// A tagged union needs a region large enough for its largest alternative and
// aligned for its most-aligned alternative, preceded by a discriminant. This
// package computes that packed layout, and the layout Go actually uses for
// a generated variant (one slot per alternative after a uint8 discriminant),
// so the two can be compared.
//
// # Layout Rules
//
//   - Types: size and alignment as reported by reflect
//   - Unions: discriminant followed by the largest payload, aligned to the
//     largest payload alignment
//   - Records: fields laid out sequentially with padding for alignment; a
//     trailing zero-size field takes one byte, as the Go compiler does
//
// # Usage
//
//	c := layout.NewCalculator()
//	info := c.Union(reflect.TypeFor[int](), reflect.TypeFor[float32]())
//	// info.Size, info.Align, info.PayloadOffset available
package layout
