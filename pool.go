package usync

// Pool recycles heap-allocated values of type T. Returned values land on a
// LIFO stash, so the most recently released — the most cache-warm — value
// is the next one checked out; when the stash is empty Checkout allocates a
// fresh zero value. Entries live in individually allocated nodes, never a
// resizable array, so a Handle stays valid no matter how many other entries
// are checked out or returned around it.
//
// Recycled values are handed back exactly as they were returned; callers
// reset whatever state matters to them. Neither collection is bounded and
// stash memory is never reclaimed.
//
// A Pool performs no locking of its own. For concurrent use wrap it in a
// Synchronized and go through exclusive guards:
//
//	pool := usync.Guard(usync.Pool[bytes.Buffer]{})
//	pool.Update(func(p *usync.Pool[bytes.Buffer]) { h = p.Checkout() })
//
// The zero value is an empty, ready-to-use Pool.
type Pool[T any] struct {
	free  *poolNode[T] // LIFO stash of released values
	used  *poolNode[T] // doubly linked list of checked-out values
	inUse int
	idle  int
}

type poolNode[T any] struct {
	value      T
	prev, next *poolNode[T]
}

// Handle identifies one checked-out pool entry. It stays valid — keeps
// denoting the same entry and the same value address — until passed to
// Return, which invalidates it. Using a Handle after Return, or returning
// it twice, is undefined behavior; the pool does not check.
type Handle[T any] struct {
	node *poolNode[T]
}

// Value returns the entry's value. The pointer is stable for the lifetime
// of the handle.
func (h Handle[T]) Value() *T {
	return &h.node.value
}

// Checkout takes the most recently returned value off the stash, or
// allocates a zero value if the stash is empty, and hands back a stable
// handle to the now-in-use entry. O(1).
func (p *Pool[T]) Checkout() Handle[T] {
	node := p.free
	if node != nil {
		p.free = node.next
		p.idle--
	} else {
		node = new(poolNode[T])
	}

	node.prev = nil
	node.next = p.used
	if p.used != nil {
		p.used.prev = node
	}
	p.used = node
	p.inUse++

	return Handle[T]{node: node}
}

// Return moves the entry behind h from the in-use list onto the stash and
// invalidates h. O(1) regardless of pool size.
func (p *Pool[T]) Return(h Handle[T]) {
	node := h.node

	if node.prev != nil {
		node.prev.next = node.next
	} else {
		p.used = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}

	node.prev = nil
	node.next = p.free
	p.free = node
	p.inUse--
	p.idle++
}

// InUse returns the number of checked-out entries.
func (p *Pool[T]) InUse() int { return p.inUse }

// Idle returns the number of stashed entries awaiting reuse.
func (p *Pool[T]) Idle() int { return p.idle }
