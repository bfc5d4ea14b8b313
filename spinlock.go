package usync

import (
	"runtime"
	"sync/atomic"
)

const cachelineSize = 64

// SpinLock is a busy-wait mutual exclusion lock built on a single atomic
// flag. The zero value is an unlocked SpinLock; it must not be copied after
// first use.
//
// The shared operations alias the exclusive ones, so a SpinLock can serve as
// the policy of a Synchronized that never actually needs concurrent readers.
type SpinLock struct {
	flag atomic.Bool
	// Pad to a cache line so neighbouring fields of an embedding struct do
	// not share the line with the flag.
	_ [cachelineSize - 4]byte
}

// TryLock attempts a single acquisition without blocking.
// A plain load probes the flag first: under heavy contention this avoids
// a doomed read-modify-write, and a lost race after the probe is still a
// correct "not acquired" result.
func (l *SpinLock) TryLock() bool {
	if l.flag.Load() {
		return false
	}
	return !l.flag.Swap(true)
}

// Lock retries TryLock until it succeeds, yielding the scheduler slice
// between attempts. There is no timeout: a holder that never unlocks makes
// every subsequent Lock spin forever.
func (l *SpinLock) Lock() {
	for !l.TryLock() {
		runtime.Gosched()
	}
}

// Unlock releases the lock. The store synchronizes-with the swap of the
// next successful TryLock.
func (l *SpinLock) Unlock() {
	l.flag.Store(false)
}

// TryRLock is TryLock: shared access degrades to exclusive on this lock.
func (l *SpinLock) TryRLock() bool { return l.TryLock() }

// RLock is Lock.
func (l *SpinLock) RLock() { l.Lock() }

// RUnlock is Unlock.
func (l *SpinLock) RUnlock() { l.Unlock() }
