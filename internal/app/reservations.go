package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bookingmx/internal/domain"
)

// ReservationService owns the reservation lifecycle: input validation, the
// active -> canceled transition, and cache bookkeeping around the repository.
// The repository itself never validates business rules.
type ReservationService struct {
	repo     domain.ReservationRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewReservationService wires the storage port and an optional cache. A nil
// cache disables the read-side cache entirely.
func NewReservationService(r domain.ReservationRepository, c domain.Cache, ttl time.Duration) *ReservationService {
	return &ReservationService{repo: r, cache: c, cacheTTL: ttl}
}

// Create validates the input and stores a new Active reservation. The id is
// assigned by the repository on first save.
func (s *ReservationService) Create(ctx context.Context, req domain.ReservationInput) (domain.Reservation, error) {
	if err := validateInput(req); err != nil {
		return domain.Reservation{}, err
	}
	r := domain.Reservation{
		GuestName: req.GuestName,
		HotelName: req.HotelName,
		CheckIn:   domain.DateOnly(req.CheckIn),
		CheckOut:  domain.DateOnly(req.CheckOut),
		Status:    domain.StatusActive,
	}
	saved, err := s.repo.Save(ctx, r)
	if err != nil {
		return domain.Reservation{}, err
	}
	s.invalidate(ctx, saved.ID)
	return saved, nil
}

// Update overwrites guest name, hotel name and dates of an existing Active
// reservation. Canceled reservations are immutable.
func (s *ReservationService) Update(ctx context.Context, id int64, req domain.ReservationInput) (domain.Reservation, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !existing.IsActive() {
		return domain.Reservation{}, fmt.Errorf("%w: cannot update a canceled reservation", domain.ErrInvalidState)
	}
	if err := validateInput(req); err != nil {
		return domain.Reservation{}, err
	}

	existing.GuestName = req.GuestName
	existing.HotelName = req.HotelName
	existing.CheckIn = domain.DateOnly(req.CheckIn)
	existing.CheckOut = domain.DateOnly(req.CheckOut)

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return domain.Reservation{}, err
	}
	s.invalidate(ctx, id)
	return saved, nil
}

// Cancel marks the reservation Canceled, its terminal state. Canceling an
// already-canceled reservation succeeds and leaves the record unchanged.
func (s *ReservationService) Cancel(ctx context.Context, id int64) (domain.Reservation, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	existing.Status = domain.StatusCanceled
	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return domain.Reservation{}, err
	}
	s.invalidate(ctx, id)
	return saved, nil
}

// Get looks up a single reservation, consulting the cache first. Cache
// failures are logged and treated as misses; they never fail the read.
func (s *ReservationService) Get(ctx context.Context, id int64) (domain.Reservation, error) {
	key := reservationKey(id)
	var r domain.Reservation
	if s.cache != nil {
		ok, err := s.cache.Get(ctx, key, &r)
		if err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache get failed")
		} else if ok {
			return r, nil
		}
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, r, int(s.cacheTTL.Seconds())); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return r, nil
}

// List returns all reservations, order not significant.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if s.cache != nil {
		ok, err := s.cache.Get(ctx, reservationsAllKey, &out)
		if err != nil {
			log.Debug().Err(err).Str("key", reservationsAllKey).Msg("cache get failed")
		} else if ok {
			return out, nil
		}
	}
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, reservationsAllKey, out, int(s.cacheTTL.Seconds())); err != nil {
			log.Debug().Err(err).Str("key", reservationsAllKey).Msg("cache set failed")
		}
	}
	return out, nil
}

const reservationsAllKey = "reservations:all"

func reservationKey(id int64) string { return fmt.Sprintf("reservation:%d", id) }

// invalidate drops the per-id and list cache entries after any mutation.
func (s *ReservationService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	for _, key := range []string{reservationKey(id), reservationsAllKey} {
		if err := s.cache.Del(ctx, key); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache del failed")
		}
	}
}

func validateInput(req domain.ReservationInput) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guest name cannot be blank", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.HotelName) == "" {
		return fmt.Errorf("%w: hotel name cannot be blank", domain.ErrInvalidInput)
	}
	return validateDates(req.CheckIn, req.CheckOut)
}

// validateDates applies the date rules in a fixed order; the first violated
// rule is the one reported.
func validateDates(in, out time.Time) error {
	if in.IsZero() || out.IsZero() {
		return fmt.Errorf("%w: dates cannot be absent", domain.ErrInvalidInput)
	}
	in, out = domain.DateOnly(in), domain.DateOnly(out)
	if !out.After(in) {
		return fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalidInput)
	}
	today := domain.DateOnly(time.Now())
	if in.Before(today) {
		return fmt.Errorf("%w: check-in must be in the future", domain.ErrInvalidInput)
	}
	if out.Before(today) {
		return fmt.Errorf("%w: check-out must be in the future", domain.ErrInvalidInput)
	}
	return nil
}
