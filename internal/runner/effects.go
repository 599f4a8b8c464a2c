package runner

import "github.com/vovakirdan/lane-runner/internal/core"

// EffectEvent is a transient cosmetic burst. It has no simulation effect;
// the host draws it for a fixed lifetime and then forgets it.
type EffectEvent struct {
	ID       uint64
	Position core.Vec3
}

// EffectBus is the outbound queue of effect events. The session appends,
// the host drains.
type EffectBus struct {
	nextID  uint64
	pending []EffectEvent
}

// Emit queues a burst at pos and returns it.
func (b *EffectBus) Emit(pos core.Vec3) EffectEvent {
	b.nextID++
	ev := EffectEvent{ID: b.nextID, Position: pos}
	b.pending = append(b.pending, ev)
	return ev
}

// Drain returns all queued events and empties the queue.
func (b *EffectBus) Drain() []EffectEvent {
	if len(b.pending) == 0 {
		return nil
	}
	out := b.pending
	b.pending = nil
	return out
}

// Len returns the number of undrained events.
func (b *EffectBus) Len() int {
	return len(b.pending)
}

// Clear drops undrained events.
func (b *EffectBus) Clear() {
	b.pending = nil
}
