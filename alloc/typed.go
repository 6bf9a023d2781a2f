package alloc

import "unsafe"

// Pool is a typed wrapper over Fixed that hands out *T instead of raw
// storage. Get zeroes the chunk before returning it, so callers see a
// fresh zero value rather than the smashed free-list word.
//
// T must not contain Go pointers; pool storage is not scanned by the
// garbage collector. See the package documentation.
type Pool[T any] struct {
	f *Fixed
}

// New creates a typed pool for objects of type T.
func New[T any](cfg *Config) (*Pool[T], error) {
	var zero T
	f, err := NewFixed(int(unsafe.Sizeof(zero)), cfg)
	if err != nil {
		return nil, err
	}
	return &Pool[T]{f: f}, nil
}

// Get returns a zeroed *T backed by pool storage.
func (p *Pool[T]) Get() (*T, error) {
	ptr, err := p.f.Alloc()
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(ptr), p.f.payloadSize))
	return (*T)(ptr), nil
}

// Put returns an object to the pool. nil is a no-op. The object must have
// come from Get on this pool and must not be used afterwards.
func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	p.f.Free(unsafe.Pointer(v))
}

// Close releases all pool memory. Outstanding objects dangle after Close.
func (p *Pool[T]) Close() error { return p.f.Close() }

// Stats returns the underlying allocator counters.
func (p *Pool[T]) Stats() Stats { return p.f.Stats() }

// Stride returns the underlying chunk stride.
func (p *Pool[T]) Stride() int { return p.f.Stride() }
