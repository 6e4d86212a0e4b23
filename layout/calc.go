package layout

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Info describes the size and alignment of a storage region.
type Info struct {
	FieldOffs     []uintptr
	Size          uintptr
	Align         uintptr
	DiscSize      uintptr
	PayloadOffset uintptr
	PayloadSize   uintptr
}

// Calculator computes layouts and caches union results by alternative list.
// It is safe for concurrent use.
type Calculator struct {
	cache map[string][]cacheEntry
	mu    sync.Mutex
}

// cacheEntry pins the exact types behind a key; distinct types may share a
// name.
type cacheEntry struct {
	alts []reflect.Type
	info Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[string][]cacheEntry),
	}
}

// Calculate returns the layout of a single type.
func (c *Calculator) Calculate(t reflect.Type) Info {
	if t == nil {
		return Info{Size: 0, Align: 1}
	}
	return Info{Size: t.Size(), Align: uintptr(t.Align())}
}

// Union returns the packed tagged-union layout for the alternatives:
// a discriminant, then a payload region of max(size) aligned to max(align).
func (c *Calculator) Union(alts ...reflect.Type) Info {
	if len(alts) == 0 {
		return Info{Size: 0, Align: 1}
	}

	key := cacheKey(alts)
	if cached, ok := c.lookup(key, alts); ok {
		return cached
	}

	discSize := DiscriminantSize(len(alts))

	maxAlign := discSize
	payloadAlign := uintptr(1)
	maxSize := uintptr(0)

	for _, alt := range alts {
		altLayout := c.Calculate(alt)
		if altLayout.Align > maxAlign {
			maxAlign = altLayout.Align
		}
		if altLayout.Align > payloadAlign {
			payloadAlign = altLayout.Align
		}
		if altLayout.Size > maxSize {
			maxSize = altLayout.Size
		}
	}

	payloadOffset := AlignTo(discSize, payloadAlign)
	info := Info{
		Size:          AlignTo(payloadOffset+maxSize, maxAlign),
		Align:         maxAlign,
		DiscSize:      discSize,
		PayloadOffset: payloadOffset,
		PayloadSize:   maxSize,
	}

	c.store(key, alts, info)
	return info
}

// Record returns the sequential layout of fields, as a Go struct with those
// field types in that order would be laid out.
func (c *Calculator) Record(fields ...reflect.Type) Info {
	if len(fields) == 0 {
		return Info{Size: 0, Align: 1}
	}

	offs := make([]uintptr, len(fields))
	maxAlign := uintptr(1)
	offset := uintptr(0)
	last := Info{}

	for i, field := range fields {
		last = c.Calculate(field)

		offset = AlignTo(offset, last.Align)
		offs[i] = offset

		if last.Align > maxAlign {
			maxAlign = last.Align
		}

		offset += last.Size
	}

	// a pointer to a trailing zero-size field must not point past the object
	if last.Size == 0 && offset > 0 {
		offset++
	}

	return Info{
		Size:      AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: offs,
	}
}

// Slots returns the layout of a generated variant: a uint8 discriminant
// followed by one slot per alternative.
func (c *Calculator) Slots(alts ...reflect.Type) Info {
	fields := make([]reflect.Type, 0, len(alts)+1)
	fields = append(fields, reflect.TypeFor[uint8]())
	fields = append(fields, alts...)
	info := c.Record(fields...)
	info.DiscSize = 1
	if len(alts) > 0 {
		info.PayloadOffset = info.FieldOffs[1]
		info.PayloadSize = info.Size - info.PayloadOffset
	}
	return info
}

func (c *Calculator) lookup(key string, alts []reflect.Type) (Info, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.cache[key] {
		if slices.Equal(e.alts, alts) {
			return e.info, true
		}
	}
	return Info{}, false
}

func (c *Calculator) store(key string, alts []reflect.Type, info Info) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.cache[key] {
		if slices.Equal(e.alts, alts) {
			return
		}
	}
	c.cache[key] = append(c.cache[key], cacheEntry{alts: slices.Clone(alts), info: info})
}

func cacheKey(alts []reflect.Type) string {
	var b strings.Builder
	for i, alt := range alts {
		if i > 0 {
			b.WriteByte(';')
		}
		if alt == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(alt.PkgPath())
		b.WriteByte('.')
		b.WriteString(alt.String())
	}
	return b.String()
}
