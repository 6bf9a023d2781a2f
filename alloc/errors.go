package alloc

import "errors"

var (
	// ErrNoMemory indicates the operating system refused to reserve a new pool.
	// The allocator's state is unchanged and the call may be retried.
	ErrNoMemory = errors.New("alloc: cannot reserve pool memory")

	// ErrPoolTooSmall indicates PoolSize is smaller than the derived chunk
	// stride, which would yield zero chunks per pool.
	ErrPoolTooSmall = errors.New("alloc: pool size smaller than chunk stride")

	// ErrSizeMustBePositive indicates a non-positive payload or pool size.
	ErrSizeMustBePositive = errors.New("alloc: size must be greater than zero")

	// ErrBadAlignment indicates the baseline alignment is not a power of two.
	ErrBadAlignment = errors.New("alloc: alignment must be a power of two")

	// ErrClosed indicates an allocation was attempted after Close.
	ErrClosed = errors.New("alloc: allocator is closed")
)
