package slot

import (
	"fmt"
	"sync"
)

// MemoryStore holds the fixed daily slot list in process memory. Every
// method serializes on one mutex, so two concurrent Book calls for the
// same slot cannot both pass the availability check. State does not
// survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	slots []Slot
}

// NewMemoryStore creates one available slot per whole hour in
// [startHour, endHour). Slot ids are the 0-based offset from startHour.
func NewMemoryStore(startHour, endHour int) *MemoryStore {
	s := &MemoryStore{}
	for hour := startHour; hour < endHour; hour++ {
		s.slots = append(s.slots, Slot{
			ID:     hour - startHour,
			Time:   fmt.Sprintf("%d:00 - %d:00", hour, hour+1),
			Status: StatusAvailable,
		})
	}
	return s
}

// List returns a copy of all slots in ascending id order.
func (s *MemoryStore) List() []Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Get returns the slot with the given id, or ErrSlotNotFound.
func (s *MemoryStore) Get(id int) (Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.find(id)
	if sl == nil {
		return Slot{}, ErrSlotNotFound
	}
	return *sl, nil
}

// Book transitions an available slot to booked and records the booker.
func (s *MemoryStore) Book(id int, name string) (Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.find(id)
	if sl == nil {
		return Slot{}, ErrSlotNotFound
	}
	if !sl.IsAvailable() {
		return Slot{}, ErrSlotAlreadyBooked
	}

	sl.Status = StatusBooked
	sl.BookedBy = &name
	return *sl, nil
}

// Cancel transitions a booked slot back to available.
func (s *MemoryStore) Cancel(id int) (Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.find(id)
	if sl == nil {
		return Slot{}, ErrSlotNotFound
	}
	if sl.IsAvailable() {
		return Slot{}, ErrSlotNotBooked
	}

	sl.Status = StatusAvailable
	sl.BookedBy = nil
	return *sl, nil
}

// find does a linear scan; the slot set is at most a handful of entries.
// Callers must hold s.mu.
func (s *MemoryStore) find(id int) *Slot {
	for i := range s.slots {
		if s.slots[i].ID == id {
			return &s.slots[i]
		}
	}
	return nil
}
