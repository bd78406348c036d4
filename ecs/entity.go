package ecs

import "fmt"

// Entity is a handle to a world slot. The low 32 bits hold the 1-based slot
// and the high 32 bits its generation, so a handle to a destroyed entity
// stops matching once the slot is reused.
type Entity uint64

type slot uint32
type generation uint32

const slotMask = 1<<32 - 1

func newEntity(s slot, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(s))
}

func (e Entity) slot() slot {
	return slot(uint64(e) & slotMask)
}

func (e Entity) generation() generation {
	return generation(uint64(e) >> 32)
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.slot(), e.generation())
}

// Valid reports whether e could name an entity. The zero Entity never does.
func (e Entity) Valid() bool {
	return e.slot() != 0
}
