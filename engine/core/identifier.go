package core

import "fmt"

// InvalidID marks a slot index that refers to nothing.
const InvalidID uint32 = 4294967295

type identifierSlot[T any] struct {
	owner      T
	used       bool
	generation uint32
}

// IdentifierPool hands out slot indices for owners kept in an arena. Each
// release bumps the slot's generation so stale (index, generation) pairs
// stop resolving once the slot is reused.
// Not safe for concurrent use.
type IdentifierPool[T any] struct {
	slots    []identifierSlot[T]
	maxCount uint32
	active   int
}

// NewIdentifierPool creates a pool holding at most maxCount owners; 0 means unbounded.
func NewIdentifierPool[T any](maxCount uint32) *IdentifierPool[T] {
	return &IdentifierPool[T]{maxCount: maxCount}
}

// Acquire stores owner in the first free slot and returns its index and generation.
func (p *IdentifierPool[T]) Acquire(owner T) (uint32, uint32, error) {
	for i := range p.slots {
		// Existing free spot. Take it.
		if !p.slots[i].used {
			p.slots[i].owner = owner
			p.slots[i].used = true
			p.active++
			return uint32(i), p.slots[i].generation, nil
		}
	}

	// No free slots, so push a new one.
	if p.maxCount > 0 && uint32(len(p.slots)) >= p.maxCount {
		return InvalidID, 0, fmt.Errorf("identifier pool holds %d owners: %w", p.maxCount, ErrRegistryFull)
	}
	p.slots = append(p.slots, identifierSlot[T]{owner: owner, used: true})
	p.active++
	return uint32(len(p.slots) - 1), 0, nil
}

// Release frees the slot if generation still matches it.
func (p *IdentifierPool[T]) Release(id, generation uint32) error {
	if id >= uint32(len(p.slots)) {
		return fmt.Errorf("identifier %d out of range (max=%d): %w", id, len(p.slots), ErrInvalidHandle)
	}
	s := &p.slots[id]
	if !s.used || s.generation != generation {
		return fmt.Errorf("identifier %d generation %d: %w", id, generation, ErrInvalidHandle)
	}

	var zero T
	s.owner = zero
	s.used = false
	s.generation++
	p.active--
	return nil
}

// Get returns the owner stored under (id, generation).
func (p *IdentifierPool[T]) Get(id, generation uint32) (T, bool) {
	var zero T
	if id >= uint32(len(p.slots)) {
		return zero, false
	}
	s := p.slots[id]
	if !s.used || s.generation != generation {
		return zero, false
	}
	return s.owner, true
}

// Len returns the number of live owners.
func (p *IdentifierPool[T]) Len() int {
	return p.active
}

// Each visits live owners in slot order.
func (p *IdentifierPool[T]) Each(fn func(id, generation uint32, owner T)) {
	for i, s := range p.slots {
		if s.used {
			fn(uint32(i), s.generation, s.owner)
		}
	}
}
