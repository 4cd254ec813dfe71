package ecs

import "slices"

// Scheduler runs systems in registration order once per tick. Events pushed
// by one system are visible to the systems after it and are dropped when the
// tick ends.
type Scheduler struct {
	order []System
}

// NewScheduler registers systems in the given order; nil entries are skipped.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{order: make([]System, 0, len(systems))}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(sys System) {
	if sys != nil {
		s.order = append(s.order, sys)
	}
}

func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	defer w.events.reset()
	for _, sys := range s.order {
		sys.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	return slices.Clone(s.order)
}
