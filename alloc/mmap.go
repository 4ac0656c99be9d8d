package alloc

import (
	"fmt"
	"os"
	"reflect"
	"sync/atomic"
	"unsafe"
)

// Mmap allocates blocks from anonymous private memory mappings, outside the
// Go heap. Only element types without Go pointers are accepted, because the
// garbage collector does not scan mapped memory. On Linux, Reallocate uses
// mremap and can grow a block without copying. Safe for concurrent use.
type Mmap[T any] struct {
	elemSize int
	pageSize int
	mapped   atomic.Int64
}

// NewMmap returns an Mmap allocator for T. It fails with ErrPointerType when
// T holds Go pointers and with ErrUnsupported on platforms without mmap.
func NewMmap[T any]() (*Mmap[T], error) {
	if !mmapSupported {
		return nil, ErrUnsupported
	}
	typ := reflect.TypeFor[T]()
	if hasPointers(typ) {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, typ)
	}
	if typ.Size() == 0 {
		return nil, fmt.Errorf("alloc: mmap of zero-sized type %s", typ)
	}
	return &Mmap[T]{elemSize: int(typ.Size()), pageSize: os.Getpagesize()}, nil
}

// Allocate maps a fresh zeroed region large enough for n elements.
func (m *Mmap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if !fits[T](n) {
		return nil, ErrOutOfMemory
	}
	length := m.mapLen(n)
	b, err := osMapAnon(length)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrOutOfMemory, length, err)
	}
	m.mapped.Add(int64(length))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// Deallocate unmaps the block's region.
func (m *Mmap[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	length := m.mapLen(len(block))
	if err := osUnmap(m.region(block)); err == nil {
		m.mapped.Add(-int64(length))
	}
}

// Reallocate resizes the mapping. Blocks that stay within the same number of
// pages are resliced; otherwise the region is remapped, or copied where the
// platform has no mremap.
func (m *Mmap[T]) Reallocate(block []T, n int) ([]T, error) {
	if len(block) == 0 {
		return m.Allocate(n)
	}
	if n <= 0 {
		m.Deallocate(block)
		return nil, nil
	}
	if !fits[T](n) {
		return nil, ErrOutOfMemory
	}
	oldLen, newLen := m.mapLen(len(block)), m.mapLen(n)
	if oldLen == newLen {
		nb := unsafe.Slice(unsafe.SliceData(block), n)
		if n < len(block) {
			clear(block[n:])
		}
		return nb, nil
	}
	b, err := osRemap(m.region(block), newLen)
	if err == errNoRemap {
		return reallocateByCopy[T](m, block, n)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: mremap %d bytes: %w", ErrOutOfMemory, newLen, err)
	}
	m.mapped.Add(int64(newLen - oldLen))
	nb := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
	if n < len(block) {
		// Tail bytes of the last page survive a shrink.
		tail := unsafe.Slice(unsafe.SliceData(nb), newLen/m.elemSize)
		clear(tail[n:])
	}
	return nb, nil
}

// Mapped returns the number of bytes currently mapped by this allocator.
func (m *Mmap[T]) Mapped() int64 {
	return m.mapped.Load()
}

// mapLen rounds the byte size of n elements up to whole pages.
func (m *Mmap[T]) mapLen(n int) int {
	bytes := n * m.elemSize
	return (bytes + m.pageSize - 1) / m.pageSize * m.pageSize
}

// region rebuilds the byte slice of the whole mapping behind block, with the
// same base address and capacity the mapping was created with.
func (m *Mmap[T]) region(block []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(block))), m.mapLen(len(block)))
}

// hasPointers reports whether values of t contain Go pointers.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.String, reflect.Interface,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
