package louvain

import "sync"

// parallelFor splits [0,n) into at most workers contiguous chunks and runs
// fn once per chunk on its own goroutine, blocking until every chunk
// retires. This is the "thin parallel-primitives shim" spec §2/§9 calls
// for: a bulk-synchronous data-parallel map with no suspension points
// inside fn and no shared mutable state across chunks beyond what fn itself
// coordinates.
//
// n <= 0 returns without calling fn. workers <= 1, or n < workers, runs fn
// once on the calling goroutine with the full range [0,n) — no goroutines
// are spawned, which keeps single-worker
// runs fully deterministic and easy to reason about in tests.
func parallelFor(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n < workers {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// parallelForChunks is like parallelFor but additionally passes each
// goroutine its own chunk index in [0, numChunks), so callers can
// accumulate into a per-chunk slot (e.g. a reduction) without any two
// goroutines ever writing the same slot. numChunks is the actual number of
// chunks parallelForChunks created (<= min(workers, n), 0 when n <= 0),
// returned so the caller knows how many slots were written; the caller
// sizes its accumulator slice before calling, to at least min(workers, n).
func parallelForChunks(n, workers int, fn func(chunkIdx, lo, hi int)) (numChunks int) {
	if n <= 0 {
		return 0
	}
	if workers <= 1 || n < workers {
		fn(0, 0, n)
		return 1
	}

	chunk := (n + workers - 1) / workers
	numChunks = (n + chunk - 1) / chunk
	var wg sync.WaitGroup
	idx := 0
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(chunkIdx, lo, hi int) {
			defer wg.Done()
			fn(chunkIdx, lo, hi)
		}(idx, lo, hi)
		idx++
	}
	wg.Wait()

	return numChunks
}

// clusterLocks is a small fixed-size striped mutex set used by the optional
// concurrent sweep (move.go) to serialize Σ updates that touch the same
// cluster without paying for one mutex per cluster.
type clusterLocks struct {
	locks []sync.Mutex
}

// newClusterLocks allocates n stripes (n is typically a small multiple of
// the worker count, not the cluster count).
func newClusterLocks(n int) *clusterLocks {
	if n < 1 {
		n = 1
	}

	return &clusterLocks{locks: make([]sync.Mutex, n)}
}

func (cl *clusterLocks) lock(cluster int32) {
	cl.locks[uint32(cluster)%uint32(len(cl.locks))].Lock()
}

func (cl *clusterLocks) unlock(cluster int32) {
	cl.locks[uint32(cluster)%uint32(len(cl.locks))].Unlock()
}
