// Package alloc provides a fixed-size object pool allocator with an
// intrusive free list.
//
// # Overview
//
// This package hands out and reclaims storage for single objects of one
// statically known size at near-zero overhead, bypassing the general-purpose
// allocator on the hot path. Storage comes from large, stride-aligned pools
// reserved from the operating system; within a pool, unused chunks double as
// free-list nodes (the link lives in the first word of each free chunk), so
// the allocator carries no per-chunk bookkeeping of its own.
//
//   - Alloc: O(1) pop of the free-list head
//   - Free: O(1) push onto the free-list head (LIFO)
//   - Growth: one pool at a time, only when the free list is empty
//
// # Geometry
//
// Each allocator derives a chunk stride at construction:
//
//	stride = max(Alignment, nextPowerOfTwo(payloadSize))
//
// The stride is a power of two, at least as large as the payload, and at
// least the configured baseline alignment (64 bytes by default). A pool of
// PoolSize bytes yields PoolSize/stride chunks, each stride-aligned.
//
// # Usage
//
//	p, err := alloc.New[Order](nil)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	o, err := p.Get() // zeroed *Order backed by pool storage
//	if err != nil {
//	    return err
//	}
//	// ... use o ...
//	p.Put(o)
//
// The lower-level Fixed allocator returns raw, uninitialized storage as an
// unsafe.Pointer; the first word of a freshly allocated chunk is smashed by
// the free-list linkage. Callers that use Fixed directly are responsible for
// initializing the payload before reading it.
//
// # Pointer-free payloads
//
// Pool storage is invisible to the garbage collector. Payload types must not
// contain Go pointers (pointers, maps, slices, channels, functions,
// interfaces, strings): the GC would not see such references and could
// reclaim their targets while the pooled object is still live.
//
// # Strict mode
//
// With Config.Strict enabled (the default), Free validates that the pointer
// falls inside one of the allocator's pools and panics on a foreign pointer.
// This replaces a debug-build-only assertion with a flag so tests can always
// exercise the check. With Strict off the check is skipped for speed and
// freeing foreign memory is undefined behavior. Double frees are not
// detected in either mode; they corrupt the free list and are a caller bug.
//
// # Thread safety
//
// Allocator instances are not thread-safe. The free-list pop/push sequences
// are multi-step, so concurrent use requires an external lock around both
// Alloc and Free, or one allocator per goroutine.
package alloc
