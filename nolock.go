package usync

// NoLock implements the Locker capability set with no-ops that always
// succeed. Use it as the Synchronized policy in single-threaded contexts,
// or wherever the caller already guarantees external synchronization, to
// skip atomic traffic entirely.
type NoLock struct{}

func (NoLock) TryLock() bool  { return true }
func (NoLock) Lock()          {}
func (NoLock) Unlock()        {}
func (NoLock) TryRLock() bool { return true }
func (NoLock) RLock()         {}
func (NoLock) RUnlock()       {}
