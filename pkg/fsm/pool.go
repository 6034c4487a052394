package fsm

// pool recycles state instances of a single type. Pools are created the
// first time a machine enters a type through its table, never eagerly, so
// outgoing instances of a type that was only ever assigned directly are
// dropped instead of recycled.
type pool[T comparable] struct {
	factory Factory[T]
	idle    []State[T]
}

// get returns a recycled instance when one is available, otherwise a freshly
// constructed one. The boolean reports reuse.
func (p *pool[T]) get() (State[T], bool) {
	if n := len(p.idle); n > 0 {
		s := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		return s, true
	}
	return p.factory(), false
}

func (p *pool[T]) put(s State[T]) {
	p.idle = append(p.idle, s)
}
