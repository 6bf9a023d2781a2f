package alloc

// Stats holds allocator counters for testing and instrumentation.
type Stats struct {
	AllocCalls    int   // Total Alloc() calls
	FreeCalls     int   // Total Free() calls (nil frees excluded)
	GrowCalls     int   // Pool acquisitions triggered by an empty free list
	PoolsAcquired int   // Pools reserved from the system so far
	PoolsReleased int   // Pools returned to the system (only at Close)
	ChunksPerPool int   // Chunks carved out of each pool
	ChunksFree    int   // Chunks currently on the free list
	ChunksLive    int   // Chunks currently handed out to callers
	BytesReserved int64 // Total bytes reserved, including alignment slack
}
