package domain

import "context"

// ReservationRepository is the storage port for reservations. Implementations
// assign identifiers and persist records; they never enforce business rules.
type ReservationRepository interface {
	FindAll(ctx context.Context) ([]Reservation, error)
	// FindByID returns ErrNotFound when no record exists at id.
	FindByID(ctx context.Context, id int64) (Reservation, error)
	// Save assigns the next identifier when r.ID is zero, otherwise overwrites
	// the entry at r.ID. Returns the stored record with the ID populated.
	Save(ctx context.Context, r Reservation) (Reservation, error)
	// Delete removes the entry at id; deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
