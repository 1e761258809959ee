package api

import (
	"strconv"
	"strings"
)

// SlotID decodes from either a JSON number or a quoted integer; the stock
// frontend submits the id as a string taken from a form field.
type SlotID int

func (s *SlotID) UnmarshalJSON(b []byte) error {
	n, err := strconv.Atoi(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*s = SlotID(n)
	return nil
}

// BookRequest is the /book body. SlotID is a pointer so a present id of 0
// is distinguishable from a missing field.
type BookRequest struct {
	SlotID *SlotID `json:"slotId"`
	Name   string  `json:"name"`
}

type CancelRequest struct {
	SlotID *SlotID `json:"slotId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
