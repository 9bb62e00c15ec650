package bookingclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bookingmx/internal/adapters/bookingclient"
)

func TestClient_CreateReservation_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			if r.Method != http.MethodPost || r.URL.Path != "/v1/reservations" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var req bookingclient.ReservationRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(201)
			_ = json.NewEncoder(w).Encode(bookingclient.Reservation{
				ID: 1, GuestName: req.GuestName, HotelName: req.HotelName,
				CheckIn: req.CheckIn, CheckOut: req.CheckOut, Status: "ACTIVE",
			})
		}
	}))
	defer ts.Close()

	cl, err := bookingclient.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.CreateReservation(ctx, bookingclient.ReservationRequest{
		GuestName: "Ana", HotelName: "H1", CheckIn: "2030-05-01", CheckOut: "2030-05-04",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 1 || got.GuestName != "Ana" || got.Status != "ACTIVE" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_CreateReservation_BadRequestDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"type":"about:blank","title":"Invalid Input","status":400,"detail":"check-out must be after check-in"}`))
	}))
	defer ts.Close()

	cl, err := bookingclient.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.CreateReservation(ctx, bookingclient.ReservationRequest{GuestName: "Ana"})
	if !errors.Is(err, bookingclient.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if !strings.Contains(err.Error(), "check-out must be after check-in") {
		t.Fatalf("expected detail in error, got %v", err)
	}
}

func TestClient_ListReservations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/reservations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`[{"id":1,"guestName":"Ana","hotelName":"H1","checkIn":"2030-05-01","checkOut":"2030-05-04","status":"ACTIVE"}]`))
	}))
	defer ts.Close()

	cl, err := bookingclient.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := cl.ListReservations(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 || got[0].GuestName != "Ana" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := bookingclient.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.ListReservations(ctx)
	if !errors.Is(err, bookingclient.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_RetriesOn429(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(429)
			return
		}
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	cl, err := bookingclient.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := cl.ListReservations(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Fatalf("expected retry after 429, hits=%d", hits)
	}
}
