package view

type holderKey struct {
	typ RenderType
	id  string
}

// ElementsHolder is the reverse index from (type, id) to the rendered
// element plus the last render payload dispatched for it. Forced
// re-renders look the payload up here and re-emit it without recreating
// the element, so element identity survives refreshes.
type ElementsHolder struct {
	byID    map[holderKey]Element
	payload map[Element]RenderEvent
}

// NewElementsHolder creates an empty holder.
func NewElementsHolder() *ElementsHolder {
	return &ElementsHolder{
		byID:    make(map[holderKey]Element),
		payload: make(map[Element]RenderEvent),
	}
}

// Set records the element for (type, id) and its last render payload.
func (h *ElementsHolder) Set(typ RenderType, id string, ev RenderEvent) {
	h.byID[holderKey{typ, id}] = ev.Element
	h.payload[ev.Element] = ev
}

// Element returns the element rendered for (type, id), or nil.
func (h *ElementsHolder) Element(typ RenderType, id string) Element {
	return h.byID[holderKey{typ, id}]
}

// Payload returns the last render event dispatched for the element.
func (h *ElementsHolder) Payload(el Element) (RenderEvent, bool) {
	ev, ok := h.payload[el]
	return ev, ok
}

// Delete removes the (type, id) entry and its payload.
func (h *ElementsHolder) Delete(typ RenderType, id string) {
	key := holderKey{typ, id}
	if el, ok := h.byID[key]; ok {
		delete(h.payload, el)
		delete(h.byID, key)
	}
}
