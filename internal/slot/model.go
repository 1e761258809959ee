package slot

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
)

// Slot is a bookable one-hour appointment window. BookedBy is non-nil
// exactly when Status is booked; the two fields always change together.
type Slot struct {
	ID       int     `json:"id"`
	Time     string  `json:"time"`
	Status   Status  `json:"status"`
	BookedBy *string `json:"bookedBy"`
}

// IsAvailable reports whether the slot can currently be booked.
func (s *Slot) IsAvailable() bool {
	return s.Status == StatusAvailable
}
