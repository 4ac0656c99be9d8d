// Package vector implements resizable contiguous containers that avoid
// unnecessary data movement and heap traffic.
//
// # Overview
//
// A Vector[T, S] keeps its elements in one contiguous buffer and counts size
// and capacity with the unsigned index type S. Three storage strategies are
// available, picked by the constructor:
//
//   - NewFixed: a buffer of a fixed capacity sized at construction. It never
//     allocates afterwards; overflowing it is reported by the GrowthPolicy.
//   - NewHeap: a single allocator block that grows by half of its capacity.
//   - NewSmall: an inline buffer for up to a given number of elements, and an
//     allocator block beyond that. ShrinkToFit moves the elements back inline
//     once they fit.
//
// # Basic Usage
//
//	v, err := vector.NewSmallOf[int, uint32](8, []int{1})
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//
//	_ = v.InsertN(0, 3, 7) // {7, 7, 7, 1}
//	_ = v.EraseRange(1, 3) // {7, 1}
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// By default elements are plain Go values: they are copied with assignment
// and moved between buffers with the builtin copy. Types that need to run
// code when they are copied, moved or destroyed supply a Traits
// implementation (or Funcs) with WithTraits. Hooks may fail; each operation
// documents what state it leaves behind when they do:
//
//   - PushBackFrom, EmplaceBack, Append, AppendN and growth leave the
//     container unchanged.
//   - Multi-element insert, erase and assign leave a valid container that
//     may have lost or partly overwritten elements when a hook fails.
//
// With Plain traits no hook can fail, so every operation fails only on
// allocation or capacity and leaves the container unchanged. Relocatable
// Funcs traits skip the move hooks, but a failing Copy, Init or Assign hook
// still leaves only the guarantee listed above.
//
// # Aliasing
//
// Values passed by pointer or slice may point into the container itself:
//
//	_ = v.PushBackFrom(v.Front()) // safe even when the buffer has to grow
//	_ = v.InsertRange(0, v.Data())
//
// # Allocators
//
// Heap blocks come from an alloc.Allocator, alloc.Heap by default. An
// allocator that also implements alloc.Reallocator lets relocatable
// elements grow in place; see package alloc for arena, budgeted and
// memory-mapped allocators.
//
// # Swapping
//
// Swap exchanges two containers of the same configuration in constant time.
// Swap2 exchanges containers of any configuration: heap blocks are handed
// over when both sides allow it, and elements are swapped one by one
// otherwise. Both containers must use the same Traits.
//
// # Metrics and Logging
//
// Metrics returns growth, shrink and relocation counters. WithLogger routes
// capacity events to a log/slog logger at debug level.
package vector
