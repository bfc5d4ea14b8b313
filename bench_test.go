package usync

import (
	"sync"
	"testing"

	"github.com/puzpuzpuz/xsync/v3"
)

// Exclusive acquisition, no contention.
func BenchmarkSpinLockUncontended(b *testing.B) {
	var l SpinLock
	for i := 0; i < b.N; i++ {
		l.Lock()
		l.Unlock()
	}
}

func BenchmarkMutexUncontended(b *testing.B) {
	var mu sync.Mutex
	for i := 0; i < b.N; i++ {
		mu.Lock()
		mu.Unlock()
	}
}

// Exclusive acquisition under contention from all Ps.
func BenchmarkSpinLockContended(b *testing.B) {
	var (
		l       SpinLock
		counter int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			counter++
			l.Unlock()
		}
	})
}

func BenchmarkMutexContended(b *testing.B) {
	var (
		mu      sync.Mutex
		counter int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			counter++
			mu.Unlock()
		}
	})
}

// Read-mostly workloads: SharedSpinLock against sync.RWMutex and against
// xsync's read-biased RBMutex as the ecosystem baseline.
func BenchmarkSharedSpinLockRead(b *testing.B) {
	var (
		l     SharedSpinLock
		value int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.RLock()
			_ = value
			l.RUnlock()
		}
	})
}

func BenchmarkRWMutexRead(b *testing.B) {
	var (
		mu    sync.RWMutex
		value int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.RLock()
			_ = value
			mu.RUnlock()
		}
	})
}

func BenchmarkRBMutexRead(b *testing.B) {
	var value int
	mu := xsync.NewRBMutex()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tk := mu.RLock()
			_ = value
			mu.RUnlock(tk)
		}
	})
}

// Guarded counter through the wrapper, exclusive guards.
func BenchmarkSynchronizedUpdate(b *testing.B) {
	counter := Guard(0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			counter.Update(func(v *int) { *v++ })
		}
	})
}

// Checkout/return cycle on a guarded pool.
func BenchmarkPoolCheckoutReturn(b *testing.B) {
	pool := Guard(Pool[[64]byte]{})
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			a := pool.Acquire()
			h := a.Value().Checkout()
			a.Value().Return(h)
			a.Release()
		}
	})
}
