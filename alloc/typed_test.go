package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// order is a pointer-free payload, the kind this allocator exists for.
type order struct {
	ID       uint64
	Price    int64
	Quantity int32
	Side     int32
	Filled   int32
	_        int32
}

func Test_Pool_Geometry(t *testing.T) {
	p, err := New[order](smallConfig())
	require.NoError(t, err)
	defer p.Close()

	// 32-byte payload under a 64-byte baseline: stride stays at 64.
	require.Equal(t, 32, int(unsafe.Sizeof(order{})))
	require.Equal(t, 64, p.Stride())
}

func Test_Pool_GetReturnsZeroedObject(t *testing.T) {
	p, err := New[order](smallConfig())
	require.NoError(t, err)
	defer p.Close()

	o, err := p.Get()
	require.NoError(t, err)
	require.Equal(t, order{}, *o)

	o.ID = 42
	o.Price = 1999
	o.Quantity = 7
	p.Put(o)

	// LIFO reuse hands the same chunk back; it must be zeroed again even
	// though the free-list link smashed its first word in between.
	o2, err := p.Get()
	require.NoError(t, err)
	require.Equal(t, unsafe.Pointer(o), unsafe.Pointer(o2))
	require.Equal(t, order{}, *o2)
}

func Test_Pool_PutNilIsNoop(t *testing.T) {
	p, err := New[order](smallConfig())
	require.NoError(t, err)
	defer p.Close()

	p.Put(nil)
	require.Equal(t, 0, p.Stats().FreeCalls)
}

// Test_Pool_LifecycleBalance checks that handed-out and reclaimed objects
// balance exactly across a churn workload: every Get is matched by one live
// object, every Put returns it, and nothing leaks or double-hands.
func Test_Pool_LifecycleBalance(t *testing.T) {
	p, err := New[order](smallConfig())
	require.NoError(t, err)
	defer p.Close()

	gets, puts := 0, 0
	live := make(map[*order]bool)

	for round := 0; round < 8; round++ {
		for i := 0; i < 100; i++ {
			o, err := p.Get()
			require.NoError(t, err)
			require.False(t, live[o], "object handed out twice while live")
			live[o] = true
			gets++

			o.ID = uint64(round*1000 + i)
		}
		for o := range live {
			p.Put(o)
			delete(live, o)
			puts++
		}
	}

	st := p.Stats()
	require.Equal(t, gets, st.AllocCalls)
	require.Equal(t, puts, st.FreeCalls)
	require.Equal(t, 0, st.ChunksLive)
	require.Equal(t, st.PoolsAcquired*st.ChunksPerPool, st.ChunksFree)
}

func Test_Pool_LargePayloadStride(t *testing.T) {
	type block struct {
		Data [5000]byte
	}
	p, err := New[block](&Config{PoolSize: 64 * 1024, Alignment: 64, Strict: true})
	require.NoError(t, err)
	defer p.Close()

	// 5000 bytes rounds up to an 8KB stride; the 64KB pool carves 8 chunks.
	require.Equal(t, 8192, p.Stride())
	require.Equal(t, 8, p.f.ChunksPerPool())

	b, err := p.Get()
	require.NoError(t, err)
	require.Zero(t, uintptr(unsafe.Pointer(b))%8192)
	p.Put(b)
}
