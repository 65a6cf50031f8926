// Package part provides a lazily initialized, mutable object model over
// URL components. Every component keeps its fields in an ordered mapping
// which is populated on first access, can be edited in place and is
// re-serialized by String.
//
// NOTE: parts are not safe for concurrent use, first access mutates state.
package part

import (
	"fmt"
	"strconv"

	"github.com/elliotchance/orderedmap/v3"
)

// Data is the field mapping of a part.
type Data = orderedmap.OrderedMap[string, any]

// NewData returns empty field mapping.
func NewData() *Data {
	return orderedmap.NewOrderedMap[string, any]()
}

// Part is implemented by every URL component.
type Part interface {
	fmt.Stringer

	IsInitialized() bool
	Data() *Data
	SetData(data *Data)
	Has(key string) bool
	Get(key string) any
	Lookup(key string) (any, bool)
	Delete(key string)
}

// base is embedded by concrete parts. P is the concrete part pointer, so
// chaining methods return the concrete type.
type base[P any] struct {
	self        P
	initialized bool
	modified    bool
	data        *Data

	// doInitialize is one time setup of the concrete part, prepare coerces
	// values of structured fields. Both are optional.
	doInitialize func()
	prepare      func(key string, value any) any
}

func (b *base[P]) setup(self P, doInitialize func(), prepare func(string, any) any) {
	b.self = self
	b.data = NewData()
	b.doInitialize = doInitialize
	b.prepare = prepare
}

// initialize runs concrete part setup exactly once. Flag is raised before
// the hook so field access from inside the hook does not recurse.
func (b *base[P]) initialize() {
	if b.initialized {
		return
	}
	b.initialized = true
	if b.doInitialize != nil {
		b.doInitialize()
	}
}

// reset drops all accumulated state, next access initializes part again.
func (b *base[P]) reset() {
	b.initialized = false
	b.modified = false
	b.data = NewData()
}

func (b *base[P]) preparePartValue(key string, value any) any {
	if b.prepare == nil {
		return value
	}
	return b.prepare(key, value)
}

// IsInitialized reports whether part has been initialized. It never
// triggers initialization.
func (b *base[P]) IsInitialized() bool {
	return b.initialized
}

// Data returns a copy of the field mapping.
func (b *base[P]) Data() *Data {
	b.initialize()
	return copyData(b.data)
}

// SetData replaces the whole field mapping. Values are stored as is.
func (b *base[P]) SetData(data *Data) {
	b.initialize()
	b.modified = true
	if data == nil {
		b.data = NewData()
		return
	}
	b.data = copyData(data)
}

// Has reports whether key is present and holds a value.
func (b *base[P]) Has(key string) bool {
	b.initialize()
	v, ok := b.data.Get(key)
	return ok && v != nil
}

// Get returns value stored under key or nil.
func (b *base[P]) Get(key string) any {
	b.initialize()
	v, _ := b.data.Get(key)
	return v
}

// Lookup is the comma-ok form of Get, ok agrees with Has.
func (b *base[P]) Lookup(key string) (any, bool) {
	b.initialize()
	v, ok := b.data.Get(key)
	return v, ok && v != nil
}

// Set stores value under key verbatim.
func (b *base[P]) Set(key string, value any) P {
	b.initialize()
	b.modified = true
	b.data.Set(key, value)
	return b.self
}

// Add appends value under the next sequential index.
func (b *base[P]) Add(value any) P {
	b.initialize()
	b.modified = true
	b.data.Set(strconv.Itoa(nextIndex(b.data)), value)
	return b.self
}

// Remove deletes key, absent keys are ignored.
func (b *base[P]) Remove(key string) P {
	b.initialize()
	if b.data.Delete(key) {
		b.modified = true
	}
	return b.self
}

// Delete is Remove without chaining.
func (b *base[P]) Delete(key string) {
	b.Remove(key)
}

// nextIndex returns one more than the largest index key, only canonical
// non-negative integers count as indexes.
func nextIndex(data *Data) int {
	next := 0
	for el := data.Front(); el != nil; el = el.Next() {
		n, err := strconv.Atoi(el.Key)
		if err != nil || n < 0 || strconv.Itoa(n) != el.Key {
			continue
		}
		if n >= next {
			next = n + 1
		}
	}
	return next
}

func copyData(src *Data) *Data {
	dst := NewData()
	for el := src.Front(); el != nil; el = el.Next() {
		dst.Set(el.Key, el.Value)
	}
	return dst
}

// coerceAll passes every field through the coercion chokepoint.
func (b *base[P]) coerceAll() {
	for el := b.data.Front(); el != nil; el = el.Next() {
		el.Value = b.preparePartValue(el.Key, el.Value)
	}
}

// ensure adds keys missing from the mapping with nil value.
func (b *base[P]) ensure(keys ...string) {
	for _, key := range keys {
		if _, ok := b.data.Get(key); !ok {
			b.data.Set(key, nil)
		}
	}
}

// text renders field value the way String of a containing part needs it.
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
