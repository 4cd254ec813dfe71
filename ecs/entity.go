package ecs

import "fmt"

// Entity is a handle to a slot in the world. The low half is the slot
// number (1-based), the high half the slot's epoch, bumped each time the slot
// is recycled so old handles go stale. The zero Entity never refers to
// anything.
type Entity uint64

type (
	slotID  uint32
	epochID uint32
)

const (
	slotBits = 32
	slotMask = 1<<slotBits - 1
)

func newEntity(s slotID, ep epochID) Entity {
	return Entity(ep)<<slotBits | Entity(s)
}

func (e Entity) slot() slotID   { return slotID(e & slotMask) }
func (e Entity) epoch() epochID { return epochID(e >> slotBits) }

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.slot(), e.epoch())
}

func (e Entity) Valid() bool {
	return e.slot() != 0
}
