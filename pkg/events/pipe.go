// Package events provides the ordered interceptor chain ("pipe") that the
// editing core uses for every event and guard surface.
//
// A pipe carries one payload type. Interceptors run in registration order;
// each may pass the payload through unchanged, rewrite it, or swallow it.
// Later interceptors only see what earlier ones chose to pass, so guard
// extensions (snap, restrict) compose by rewriting the payload before the
// owner commits it.
package events

// Interceptor inspects a payload and returns the (possibly rewritten)
// payload plus whether it should continue down the chain. Returning false
// swallows the event: no later interceptor sees it and Emit reports it
// as rejected.
type Interceptor[T any] func(T) (T, bool)

// Pipe is an ordered chain of interceptors over payloads of type T.
// The zero value is ready to use. Pipes are not safe for concurrent
// use; the core is single-threaded by design.
type Pipe[T any] struct {
	chain []Interceptor[T]
}

// Add appends an interceptor to the end of the chain.
func (p *Pipe[T]) Add(i Interceptor[T]) {
	p.chain = append(p.chain, i)
}

// Listen appends a passive listener that never rewrites or swallows.
func (p *Pipe[T]) Listen(fn func(T)) {
	p.Add(func(ev T) (T, bool) {
		fn(ev)
		return ev, true
	})
}

// Emit runs the payload through the chain. It returns the payload as last
// seen and whether it survived every interceptor. With an empty chain the
// payload passes through untouched.
func (p *Pipe[T]) Emit(ev T) (T, bool) {
	for _, i := range p.chain {
		next, ok := i(ev)
		if !ok {
			return ev, false
		}
		ev = next
	}
	return ev, true
}

// Len reports the number of registered interceptors.
func (p *Pipe[T]) Len() int { return len(p.chain) }

// Reset removes all interceptors. Owners call this on destroy so that
// listeners bound to a torn-down session cannot fire again.
func (p *Pipe[T]) Reset() { p.chain = nil }
