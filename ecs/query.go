package ecs

import "github.com/milk9111/dasher/ecs/component"

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, ka, false)
	if sa == nil {
		return
	}
	for _, id := range sa.snapshot() {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		a, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.snapshot() {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		a, aok := sa.get(id)
		b, bok := sb.get(id)
		if !aok || !bok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range sa.snapshot() {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		a, aok := sa.get(id)
		b, bok := sb.get(id)
		c, cok := sc.get(id)
		if !aok || !bok || !cok {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns the first live entity holding the component, in insertion
// order. Used for singletons such as the player or the run state.
func First[A any](w *World, ka component.ComponentKind[A]) (Entity, bool) {
	sa := storeFor(w, ka, false)
	if sa == nil {
		return 0, false
	}
	for _, id := range sa.ids {
		if e, ok := w.entities.entityFor(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count reports how many entities hold the component.
func Count[A any](w *World, ka component.ComponentKind[A]) int {
	sa := storeFor(w, ka, false)
	if sa == nil {
		return 0
	}
	return sa.len()
}
