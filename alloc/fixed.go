package alloc

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/joshuapare/poolkit/internal/sysmem"
)

// Debug flag - set to true to enable verbose logging (compile-time toggle).
const debugAlloc = false

// Runtime flag for growth logging - controlled by POOLKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("POOLKIT_LOG_ALLOC") != ""

// Indirection over the system reservation calls so tests can simulate
// reservation failure.
var (
	reserveMem = sysmem.Reserve
	releaseMem = sysmem.Release
)

// chunkLink threads the free list through the first word of each free
// chunk. A chunk is either on the free list or live in the caller's hands,
// never both, so free storage doubles as list-node storage.
type chunkLink struct {
	next *chunkLink
}

// poolBlock is one reservation from the system. raw is the full mapping,
// retained for release; base is the stride-aligned start of the carved
// chunks. The usable region is exactly poolSize bytes from base.
type poolBlock struct {
	raw  []byte
	base uintptr
}

// Fixed is a pool allocator for single objects of one fixed payload size.
//
// It owns a growable, append-only list of pools and a LIFO free list of
// chunks. Alloc and Free are O(1); growth reserves one pool at a time and
// only ever runs when the free list is empty. Not thread-safe.
type Fixed struct {
	payloadSize   int
	stride        int
	poolSize      int
	chunksPerPool int
	strict        bool

	pools []poolBlock
	free  *chunkLink

	stats  Stats
	closed bool

	// Test hook: called after each pool acquisition (nil in production).
	onGrow func(poolBytes int)
}

// NewFixed creates an allocator for payloads of payloadSize bytes.
// No memory is reserved until the first Alloc.
func NewFixed(payloadSize int, cfg *Config) (*Fixed, error) {
	if payloadSize <= 0 {
		return nil, ErrSizeMustBePositive
	}
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	stride := computeStride(payloadSize, cfg.Alignment)
	if cfg.PoolSize < stride {
		return nil, ErrPoolTooSmall
	}

	f := &Fixed{
		payloadSize:   payloadSize,
		stride:        stride,
		poolSize:      cfg.PoolSize,
		chunksPerPool: cfg.PoolSize / stride,
		strict:        cfg.Strict,
	}
	f.stats.ChunksPerPool = f.chunksPerPool
	return f, nil
}

// Stride returns the byte distance between consecutive chunks: a power of
// two, >= the payload size and >= the configured alignment.
func (f *Fixed) Stride() int { return f.stride }

// ChunksPerPool returns how many chunks each pool acquisition yields.
func (f *Fixed) ChunksPerPool() int { return f.chunksPerPool }

// Alloc returns stride-aligned raw storage for exactly one payload object.
// The storage is uninitialized; the first word holds a stale free-list link.
// If the free list is empty, one pool is reserved and carved first. On
// reservation failure ErrNoMemory is returned and no state has changed.
func (f *Fixed) Alloc() (unsafe.Pointer, error) {
	if f.closed {
		return nil, ErrClosed
	}
	f.stats.AllocCalls++

	if f.free == nil {
		if err := f.grow(); err != nil {
			return nil, err
		}
	}

	// Pop the head. A freshly carved pool always yields at least one chunk
	// (PoolSize >= stride is enforced at construction).
	head := f.free
	f.free = head.next
	f.stats.ChunksFree--
	f.stats.ChunksLive++
	return unsafe.Pointer(head), nil
}

// Free returns a chunk previously obtained from Alloc on this allocator.
// nil is a no-op. In strict mode a pointer outside every owned pool panics;
// without strict mode such a pointer, or a double free, silently corrupts
// the free list.
func (f *Fixed) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	if f.strict && !f.owns(uintptr(p)) {
		panic(fmt.Sprintf("alloc: Free(%#x): pointer not owned by this allocator", uintptr(p)))
	}
	f.stats.FreeCalls++

	c := (*chunkLink)(p)
	c.next = f.free
	f.free = c
	f.stats.ChunksFree++
	f.stats.ChunksLive--
}

// Close releases every owned pool back to the system. Live chunks are not
// tracked individually: callers must have finished with all of them before
// Close, or they dangle. Close is idempotent.
func (f *Fixed) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	var firstErr error
	for _, pb := range f.pools {
		if err := releaseMem(pb.raw); err != nil && firstErr == nil {
			firstErr = err
		}
		f.stats.PoolsReleased++
	}
	f.pools = nil
	f.free = nil
	f.stats.ChunksFree = 0
	f.stats.ChunksLive = 0
	return firstErr
}

// Stats returns a snapshot of the allocator counters.
func (f *Fixed) Stats() Stats { return f.stats }

// grow reserves one pool, carves it into chunks and splices the chain onto
// the free list. It must only run when the free list is empty: splicing a
// fresh chain over a non-empty list would orphan every existing free chunk.
func (f *Fixed) grow() error {
	if f.free != nil {
		panic("alloc: carving a pool while the free list is non-empty")
	}

	// Over-reserve by one stride so the base can be aligned up. Anonymous
	// mappings are already page-aligned, so for strides up to a page the
	// slack is never consumed.
	reserve := f.poolSize + f.stride
	raw, err := reserveMem(reserve)
	if err != nil {
		if debugAlloc {
			debugLogf("grow: reserve %d bytes failed: %v", reserve, err)
		}
		return fmt.Errorf("%w: %v", ErrNoMemory, err)
	}

	base := uintptr(unsafe.Pointer(&raw[0]))
	skip := int((uintptr(f.stride) - base%uintptr(f.stride)) % uintptr(f.stride))
	chunks := raw[skip : skip+f.poolSize]

	f.pools = append(f.pools, poolBlock{raw: raw, base: base + uintptr(skip)})
	f.stats.GrowCalls++
	f.stats.PoolsAcquired++
	f.stats.BytesReserved += int64(len(raw))

	// Carve: chunk i lives at base + i*stride; link each chunk to the next
	// and terminate the chain, then make chunk 0 the new head.
	head := (*chunkLink)(unsafe.Pointer(&chunks[0]))
	c := head
	for i := 1; i < f.chunksPerPool; i++ {
		next := (*chunkLink)(unsafe.Pointer(&chunks[i*f.stride]))
		c.next = next
		c = next
	}
	c.next = nil
	f.free = head
	f.stats.ChunksFree += f.chunksPerPool

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[GROW] #%d: pool at %p, %d chunks x %d bytes\n",
			f.stats.GrowCalls, head, f.chunksPerPool, f.stride)
	}
	if f.onGrow != nil {
		f.onGrow(f.poolSize)
	}
	return nil
}

// owns reports whether p falls inside the usable range of an owned pool.
// Linear scan over the pool list; strict-mode only.
func (f *Fixed) owns(p uintptr) bool {
	for _, pb := range f.pools {
		if p >= pb.base && p < pb.base+uintptr(f.poolSize) {
			return true
		}
	}
	return false
}

// debugLogf prints debug messages if debugAlloc is enabled.
func debugLogf(format string, args ...any) {
	if debugAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] "+format+"\n", args...)
	}
}
