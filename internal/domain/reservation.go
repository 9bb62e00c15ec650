package domain

import "time"

// Status is the lifecycle state of a reservation. Canceled is terminal.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusCanceled Status = "CANCELED"
)

type Reservation struct {
	ID        int64 // 0 until assigned by the repository
	GuestName string
	HotelName string
	CheckIn   time.Time // calendar date, midnight UTC
	CheckOut  time.Time
	Status    Status
}

// IsActive reports whether the reservation can still be edited.
func (r Reservation) IsActive() bool { return r.Status == StatusActive }

// ReservationInput carries the caller-supplied fields for create and update.
type ReservationInput struct {
	GuestName string
	HotelName string
	CheckIn   time.Time
	CheckOut  time.Time
}

// DateOnly truncates t to its calendar date in UTC. Reservations compare and
// store dates at day granularity; time-of-day never participates in validation.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
