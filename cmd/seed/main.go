package main

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"bookingmx/internal/adapters/bookingclient"
	"bookingmx/internal/adapters/observability"
	"bookingmx/internal/shared"
)

const dateLayout = "2006-01-02"

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.SeedBaseURL).
		Int("workers", cfg.SeedWorkers).
		Int("rps", cfg.SeedRPS).
		Msg("seed starting")

	client, err := bookingclient.New(cfg.SeedBaseURL, cfg.SeedRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize reservations client")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	today := time.Now().UTC()
	for _, s := range shared.SampleReservations() {
		s := s

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(s shared.SeedReservation) {
			defer wg.Done()
			defer sem.Release(int64(1))

			req := bookingclient.ReservationRequest{
				GuestName: s.GuestName,
				HotelName: s.HotelName,
				CheckIn:   today.AddDate(0, 0, s.CheckInDays).Format(dateLayout),
				CheckOut:  today.AddDate(0, 0, s.CheckOutDays).Format(dateLayout),
			}
			res, err := client.CreateReservation(ctx, req)
			if err != nil {
				log.Warn().Str("guest", s.GuestName).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int64("id", res.ID).Str("guest", res.GuestName).Str("hotel", res.HotelName).Msg("seed ok")
		}(s)
	}

	wg.Wait()

	all, err := client.ListReservations(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listing reservations failed")
	}
	log.Info().Int("total", len(all)).Msg("seeding completed")
}
