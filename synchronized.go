package usync

// Synchronized owns a value of type T and the lock policy L that guards it.
// Callers never touch the lock directly: access goes through scoped guards
// (Acquire/RAcquire) or closure helpers (Update/Read), so the value cannot
// be reached without holding the lock.
//
// The policy is a type parameter, instantiated with a concrete pointer type
// such as *SpinLock, *SharedSpinLock, *NoLock or *sync.RWMutex, so the lock
// calls dispatch statically. One Synchronized serializes exactly one value;
// the lock is not shared with anything else.
type Synchronized[T any, L Locker] struct {
	lock  L
	value T
}

// NewSynchronized binds value to the given lock policy. The lock must be
// fresh and unlocked, for example:
//
//	s := usync.NewSynchronized(&usync.SharedSpinLock{}, map[string]int{})
func NewSynchronized[T any, L Locker](lock L, value T) *Synchronized[T, L] {
	return &Synchronized[T, L]{lock: lock, value: value}
}

// Guard binds value to a fresh SpinLock, the default policy.
func Guard[T any](value T) *Synchronized[T, *SpinLock] {
	return NewSynchronized(&SpinLock{}, value)
}

// Access is an exclusive guard over a Synchronized value: the lock is held
// from Acquire until Release. Release through a deferred call so the lock
// is dropped on every exit path, including panics:
//
//	a := s.Acquire()
//	defer a.Release()
//	*a.Value() = ...
//
// An Access must not be copied; Release the original exactly once.
type Access[T any, L Locker] struct {
	owner *Synchronized[T, L]
}

// Acquire takes the exclusive lock and returns a guard exposing the value.
// It blocks for as long as the policy's Lock does.
func (s *Synchronized[T, L]) Acquire() Access[T, L] {
	s.lock.Lock()
	return Access[T, L]{owner: s}
}

// Value returns the guarded value for reading and writing. Valid only
// between Acquire and Release; the pointer must not escape the guard's
// scope.
func (a *Access[T, L]) Value() *T {
	return &a.owner.value
}

// Release drops the exclusive lock. A second Release on the same guard is
// a no-op.
func (a *Access[T, L]) Release() {
	if a.owner == nil {
		return
	}
	a.owner.lock.Unlock()
	a.owner = nil
}

// RAccess is the shared counterpart of Access: many RAccess guards may be
// held at once under a policy that supports shared acquisition. The value
// reached through it must not be modified.
type RAccess[T any, L Locker] struct {
	owner *Synchronized[T, L]
}

// RAcquire takes the shared lock and returns a read guard.
func (s *Synchronized[T, L]) RAcquire() RAccess[T, L] {
	s.lock.RLock()
	return RAccess[T, L]{owner: s}
}

// Value returns the guarded value. Read-only: writing through the returned
// pointer while only a shared lock is held is a data race.
func (a *RAccess[T, L]) Value() *T {
	return &a.owner.value
}

// Release drops the shared lock. A second Release on the same guard is a
// no-op.
func (a *RAccess[T, L]) Release() {
	if a.owner == nil {
		return
	}
	a.owner.lock.RUnlock()
	a.owner = nil
}

// Update runs fn with the exclusive lock held. The lock is released when fn
// returns, or unwinds.
func (s *Synchronized[T, L]) Update(fn func(value *T)) {
	a := s.Acquire()
	defer a.Release()
	fn(a.Value())
}

// Read runs fn with the shared lock held. fn must not modify the value.
func (s *Synchronized[T, L]) Read(fn func(value *T)) {
	a := s.RAcquire()
	defer a.Release()
	fn(a.Value())
}
