package roomresponse

import "sync"

// complexScratch holds pooled scratch memory for FFT input/output
// buffers, mirroring dsp/spectrum's scratchPool pattern: buffers are
// scoped to a single Analyze call and returned to the pool on exit, so
// steady-state allocation is bounded regardless of how many analyses a
// shared Registry serves.
type complexScratch struct {
	data []complex128
}

var complexScratchPool = sync.Pool{
	New: func() any { return &complexScratch{} },
}

// getComplexScratch returns a zeroed []complex128 of length n, backed
// by pooled memory when available.
func getComplexScratch(n int) (buf []complex128, handle *complexScratch) {
	handle = complexScratchPool.Get().(*complexScratch)
	if cap(handle.data) < n {
		handle.data = make([]complex128, n)
	} else {
		handle.data = handle.data[:n]
		clear(handle.data)
	}
	return handle.data, handle
}

// putComplexScratch returns a scratch buffer to the pool.
func putComplexScratch(h *complexScratch) {
	if h == nil {
		return
	}
	complexScratchPool.Put(h)
}
