package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/slotwise/slot-booking/internal/slot"
)

func listSlotsHandler(store slot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.List())
	}
}

func bookSlotHandler(store slot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.SlotID == nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, "Slot ID and name are required")
			return
		}

		booked, err := store.Book(int(*req.SlotID), req.Name)
		if err != nil {
			handleStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, booked)
	}
}

func cancelBookingHandler(store slot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CancelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.SlotID == nil {
			writeError(w, http.StatusBadRequest, "Slot ID is required")
			return
		}

		cancelled, err := store.Cancel(int(*req.SlotID))
		if err != nil {
			handleStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, cancelled)
	}
}

func handleStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, slot.ErrSlotNotFound):
		writeError(w, http.StatusNotFound, "Slot not found")
	case errors.Is(err, slot.ErrSlotAlreadyBooked):
		writeError(w, http.StatusBadRequest, "Slot is already booked")
	case errors.Is(err, slot.ErrSlotNotBooked):
		writeError(w, http.StatusBadRequest, "Slot is not booked")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
