package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slotwise/slot-booking/internal/slot"
)

func newTestServer(t *testing.T) (*slot.MemoryStore, *httptest.Server) {
	t.Helper()

	store := slot.NewMemoryStore(10, 17)
	srv := httptest.NewServer(NewRouter(RouterConfig{
		Store:   store,
		Env:     "test",
		Version: "test",
	}))
	t.Cleanup(srv.Close)

	return store, srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeSlot(t *testing.T, resp *http.Response) slot.Slot {
	t.Helper()
	defer resp.Body.Close()

	var s slot.Slot
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		t.Fatalf("decode slot: %v", err)
	}
	return s
}

func assertErrorBody(t *testing.T, resp *http.Response, wantStatus int, wantMessage string) {
	t.Helper()
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Errorf("expected status %d, got %d", wantStatus, resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error != wantMessage {
		t.Errorf("expected error %q, got %q", wantMessage, body.Error)
	}
}

func TestListSlots(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/slots", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var slots []slot.Slot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		t.Fatalf("decode slots: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(slots))
	}
	for i, s := range slots {
		if s.ID != i {
			t.Errorf("slot %d: expected id %d, got %d", i, i, s.ID)
		}
		if s.Status != slot.StatusAvailable {
			t.Errorf("slot %d: expected available, got %q", i, s.Status)
		}
	}
}

func TestListSlotsEmitsNullBookedBy(t *testing.T) {
	_, srv := newTestServer(t)

	// The wire shape matters here: bookedBy must serialize as null for
	// available slots, not be omitted.
	resp := doJSON(t, srv, http.MethodGet, "/slots", "")
	defer resp.Body.Close()

	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	field, ok := raw[0]["bookedBy"]
	if !ok {
		t.Fatal("bookedBy missing from slot JSON")
	}
	if string(field) != "null" {
		t.Errorf("expected bookedBy null, got %s", field)
	}
}

func TestBookSlot(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/book", `{"slotId":2,"name":"Bob"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	s := decodeSlot(t, resp)
	if s.ID != 2 || s.Time != "12:00 - 13:00" || s.Status != slot.StatusBooked {
		t.Errorf("unexpected slot: %+v", s)
	}
	if s.BookedBy == nil || *s.BookedBy != "Bob" {
		t.Errorf("expected bookedBy Bob, got %v", s.BookedBy)
	}
}

func TestBookSlotAlreadyBooked(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/book", `{"slotId":2,"name":"Bob"}`)
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodPost, "/book", `{"slotId":2,"name":"Carol"}`)
	assertErrorBody(t, resp, http.StatusBadRequest, "Slot is already booked")
}

func TestBookSlotStringID(t *testing.T) {
	// The stock frontend sends the id as a string.
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/book", `{"slotId":"4","name":"Dana"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	s := decodeSlot(t, resp)
	if s.ID != 4 || s.Status != slot.StatusBooked {
		t.Errorf("unexpected slot: %+v", s)
	}
}

func TestBookSlotZero(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/book", `{"slotId":0,"name":"Zoe"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for slot 0, got %d", resp.StatusCode)
	}

	s := decodeSlot(t, resp)
	if s.ID != 0 || s.Status != slot.StatusBooked {
		t.Errorf("unexpected slot: %+v", s)
	}
}

func TestBookSlotMissingFields(t *testing.T) {
	store, srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"slotId":1}`},
		{"empty name", `{"slotId":1,"name":""}`},
		{"missing slotId", `{"name":"Alice"}`},
		{"empty body", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, srv, http.MethodPost, "/book", tc.body)
			assertErrorBody(t, resp, http.StatusBadRequest, "Slot ID and name are required")
		})
	}

	// Validation failures never touch the store.
	for _, s := range store.List() {
		if s.Status != slot.StatusAvailable {
			t.Errorf("slot %d mutated by rejected request", s.ID)
		}
	}
}

func TestBookSlotNotFound(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/book", `{"slotId":99,"name":"Alice"}`)
	assertErrorBody(t, resp, http.StatusNotFound, "Slot not found")
}

func TestBookSlotInvalidBody(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/book", `{"slotId":"abc","name":"Alice"}`)
	assertErrorBody(t, resp, http.StatusBadRequest, "Invalid request body")
}

func TestCancelBooking(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/book", `{"slotId":3,"name":"Alice"}`)
	resp.Body.Close()

	resp = doJSON(t, srv, http.MethodPost, "/cancel", `{"slotId":3}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	s := decodeSlot(t, resp)
	if s.Status != slot.StatusAvailable {
		t.Errorf("expected available, got %q", s.Status)
	}
	if s.BookedBy != nil {
		t.Errorf("expected nil bookedBy, got %v", *s.BookedBy)
	}
}

func TestCancelNotBooked(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/cancel", `{"slotId":3}`)
	assertErrorBody(t, resp, http.StatusBadRequest, "Slot is not booked")
}

func TestCancelNotFound(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/cancel", `{"slotId":99}`)
	assertErrorBody(t, resp, http.StatusNotFound, "Slot not found")
}

func TestCancelMissingSlotID(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/cancel", `{}`)
	assertErrorBody(t, resp, http.StatusBadRequest, "Slot ID is required")
}

func TestHealthLive(t *testing.T) {
	_, srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/health/live", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body LivenessResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %q", body.Status)
	}
}

func TestRequestIDHeader(t *testing.T) {
	_, srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/slots", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("X-Request-ID", "test-id-123")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("expected X-Request-ID passthrough, got %q", got)
	}
}
