// Package usync provides lightweight synchronization primitives meant as
// cheap alternatives to sync.Mutex/sync.RWMutex for short critical sections:
// busy-wait exclusive and reader/writer locks, a typed wrapper binding a lock
// to the value it protects, a single-slot value handoff, and a recycling pool
// with stable handles.
//
// None of the acquire operations accept a deadline and none report errors:
// contention is resolved by spinning or blocking, never surfaced as failure.
// There is no fairness ordering between waiters, no re-entrancy and no
// priority inheritance. Misuse (double release, clearing a Promise under an
// in-flight Wait, returning a pool handle twice) is undefined behavior;
// the primitives stay unchecked to stay cheap.
package usync

import (
	"sync"

	"github.com/linkdata/deadlock"
)

// Locker is the capability set Synchronized requires from a lock policy:
// exclusive lock/unlock plus their shared counterparts.
//
// Besides the package's own SpinLock, SharedSpinLock and NoLock it is
// satisfied by *sync.RWMutex and *deadlock.RWMutex, so a parking mutex
// (optionally with deadlock detection enabled) can be slotted in where
// spinning does not fit the workload.
type Locker interface {
	sync.Locker
	RLock()
	RUnlock()
}

var (
	_ Locker = (*SpinLock)(nil)
	_ Locker = (*SharedSpinLock)(nil)
	_ Locker = (*NoLock)(nil)
	_ Locker = (*sync.RWMutex)(nil)
	_ Locker = (*deadlock.RWMutex)(nil)
)
