package view

// SocketRegistry maps rendered elements to their socket descriptors. It
// is populated from socket render events and depopulated on unmount, so
// a pointer-event target can be resolved to a logical socket in O(1).
// Lookups for unknown elements report not-found; callers treat that as
// "not a socket, ignore".
type SocketRegistry struct {
	m map[Element]SocketInfo
}

// NewSocketRegistry creates an empty registry.
func NewSocketRegistry() *SocketRegistry {
	return &SocketRegistry{m: make(map[Element]SocketInfo)}
}

// Attach subscribes the registry to a view registry's render and unmount
// pipes so entries track socket element lifetime automatically.
func (s *SocketRegistry) Attach(reg *Registry) {
	reg.Render.Listen(func(ev RenderEvent) {
		if ev.Type == RenderSocket && ev.Socket != nil {
			s.Set(ev.Element, *ev.Socket)
		}
	})
	reg.Unmount.Listen(func(ev UnmountEvent) {
		s.Delete(ev.Element)
	})
}

// Set records or replaces the descriptor for an element.
func (s *SocketRegistry) Set(el Element, info SocketInfo) {
	s.m[el] = info
}

// Get resolves an element to its socket descriptor.
func (s *SocketRegistry) Get(el Element) (SocketInfo, bool) {
	info, ok := s.m[el]
	return info, ok
}

// Delete removes an element's entry. Unknown elements are a no-op.
func (s *SocketRegistry) Delete(el Element) {
	delete(s.m, el)
}

// Len reports the number of registered sockets.
func (s *SocketRegistry) Len() int { return len(s.m) }
