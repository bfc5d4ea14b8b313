package usync_test

import (
	"fmt"

	"github.com/ortfero/usync"
)

func ExampleGuard() {
	counter := usync.Guard(0)

	a := counter.Acquire()
	*a.Value() = 41
	a.Release()

	counter.Update(func(v *int) { *v++ })

	counter.Read(func(v *int) {
		fmt.Println(*v)
	})
	// Output: 42
}

func ExamplePromise() {
	p := usync.NewPromise[int]()

	go p.Set(42)

	fmt.Println(p.Wait())
	// Output: 42
}

func ExamplePool() {
	var p usync.Pool[[]byte]

	h := p.Checkout()
	*h.Value() = append(*h.Value(), "scratch"...)
	p.Return(h)

	// The most recently returned entry is reused as-is.
	h = p.Checkout()
	fmt.Println(string(*h.Value()))
	p.Return(h)
	// Output: scratch
}
