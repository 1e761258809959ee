package slot

import "errors"

var (
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	ErrSlotNotBooked     = errors.New("slot is not booked")
)

// Store owns all mutable booking state. Handlers route every read and
// transition through it, so a different implementation (persistent,
// transactional) can be swapped in without touching call sites.
type Store interface {
	List() []Slot
	Get(id int) (Slot, error)
	Book(id int, name string) (Slot, error)
	Cancel(id int) (Slot, error)
}
