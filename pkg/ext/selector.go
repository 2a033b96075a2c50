// Package ext provides the editing extensions built on the core's guard
// and notification pipes: multi-selection, pan/zoom clamping, grid
// snapping and fit-to-view. Extensions never mutate core state directly;
// they intercept proposed changes or re-issue them through the owning
// component's public methods.
package ext

// SelectorEntity is anything the selector can hold: nodes today,
// comments or groups tomorrow. Identity is Label plus ID.
type SelectorEntity struct {
	Label string
	ID    string
	// Translate moves the entity by a delta in content space.
	Translate func(dx, dy float64)
	// Unselect lets the entity refresh its visual state.
	Unselect func()
}

func (e SelectorEntity) key() string { return e.Label + "_" + e.ID }

// Selector holds the multi-selection and tracks which single entity is
// the live drag anchor. Group translation skips the anchor so the drag
// target is not moved twice (once by its own drag, once by the group).
type Selector struct {
	entities map[string]SelectorEntity
	order    []string
	picked   string
}

// NewSelector creates an empty selector.
func NewSelector() *Selector {
	return &Selector{entities: make(map[string]SelectorEntity)}
}

// Add selects an entity. Unless accumulate is set, the existing
// selection is cleared first.
func (s *Selector) Add(e SelectorEntity, accumulate bool) {
	if !accumulate {
		s.UnselectAll()
	}
	k := e.key()
	if _, ok := s.entities[k]; !ok {
		s.order = append(s.order, k)
	}
	s.entities[k] = e
}

// Remove deselects a single entity.
func (s *Selector) Remove(e SelectorEntity) {
	k := e.key()
	entity, ok := s.entities[k]
	if !ok {
		return
	}
	delete(s.entities, k)
	for i, o := range s.order {
		if o == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if entity.Unselect != nil {
		entity.Unselect()
	}
}

// UnselectAll clears the selection, notifying each entity.
func (s *Selector) UnselectAll() {
	for _, k := range s.order {
		if e, ok := s.entities[k]; ok && e.Unselect != nil {
			e.Unselect()
		}
	}
	s.entities = make(map[string]SelectorEntity)
	s.order = nil
}

// IsSelected reports whether the entity is in the selection.
func (s *Selector) IsSelected(e SelectorEntity) bool {
	_, ok := s.entities[e.key()]
	return ok
}

// Count reports the selection size.
func (s *Selector) Count() int { return len(s.entities) }

// Entities returns the selection in selection order.
func (s *Selector) Entities() []SelectorEntity {
	out := make([]SelectorEntity, 0, len(s.entities))
	for _, k := range s.order {
		if e, ok := s.entities[k]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Translate moves every selected entity except the live drag anchor.
func (s *Selector) Translate(dx, dy float64) {
	for _, k := range s.order {
		if k == s.picked {
			continue
		}
		if e, ok := s.entities[k]; ok && e.Translate != nil {
			e.Translate(dx, dy)
		}
	}
}

// Pick marks the entity as the live drag anchor.
func (s *Selector) Pick(e SelectorEntity) { s.picked = e.key() }

// Release clears the drag anchor.
func (s *Selector) Release() { s.picked = "" }

// IsPicked reports whether the entity is the live drag anchor.
func (s *Selector) IsPicked(e SelectorEntity) bool {
	return s.picked != "" && s.picked == e.key()
}
