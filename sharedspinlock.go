package usync

import (
	"runtime"
	"sync/atomic"
)

// drainSpins bounds the tight busy loop a writer runs while waiting for
// readers to leave; after that many empty iterations the goroutine yields
// its scheduler slice so the readers it is waiting for can actually run.
const drainSpins = 16

// SharedSpinLock is a busy-wait reader/writer lock: one atomic writer flag
// plus one atomic reader count, co-located in a single cache line. The zero
// value is unlocked; it must not be copied after first use.
//
// Writers claim the flag first and then drain outstanding readers, so
// readers arriving after the claim are blocked while readers already inside
// finish undisturbed. There is no fairness queue: a continuous stream of
// readers can starve a draining writer, and a continuously re-acquiring
// writer can starve readers. Both are properties of the spin design, not
// defects.
type SharedSpinLock struct {
	writer  atomic.Bool
	readers atomic.Int32
	_       [cachelineSize - 8]byte
}

// TryLock attempts exclusive acquisition. It fails immediately when another
// writer holds or is draining the lock; after winning the writer flag it
// still busy-waits for outstanding readers to leave before returning true.
func (l *SharedSpinLock) TryLock() bool {
	if l.writer.Load() {
		return false
	}
	if l.writer.Swap(true) {
		return false
	}

	spins := 0
	for l.readers.Load() > 0 {
		spins++
		if spins > drainSpins {
			spins = 0
			runtime.Gosched()
		}
	}
	return true
}

// Lock retries TryLock until exclusive acquisition succeeds.
func (l *SharedSpinLock) Lock() {
	for !l.TryLock() {
		runtime.Gosched()
	}
}

// Unlock releases exclusive access.
func (l *SharedSpinLock) Unlock() {
	l.writer.Store(false)
}

// TryRLock attempts shared acquisition. The reader count is incremented
// optimistically and the writer flag re-checked afterwards; if a writer
// claimed the lock in the window between the probe and the increment, the
// increment is undone and the attempt fails. This keeps the common
// multi-reader path to two atomic operations with no lock.
func (l *SharedSpinLock) TryRLock() bool {
	if l.writer.Load() {
		return false
	}

	l.readers.Add(1)
	if l.writer.Load() {
		l.readers.Add(-1)
		return false
	}
	return true
}

// RLock retries TryRLock until shared acquisition succeeds.
func (l *SharedSpinLock) RLock() {
	for !l.TryRLock() {
		runtime.Gosched()
	}
}

// RUnlock releases shared access. No ordering beyond the atomic decrement
// is needed: correctness comes from the writer-side drain loop.
func (l *SharedSpinLock) RUnlock() {
	l.readers.Add(-1)
}
