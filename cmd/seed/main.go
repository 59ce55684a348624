// Command seed initializes the hotel data file: it creates an empty
// collection when the file is missing and can import records from a JSON
// seed file, skipping ids that already exist.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"hotelier/internal/adapters/observability"
	"hotelier/internal/domain"
	"hotelier/internal/shared"
	"hotelier/internal/storage/jsonfile"
)

func main() {
	seedFile := flag.String("seed", "", "path to a JSON array of hotel records to import")
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	store := jsonfile.New(cfg.DataFile)
	if err := store.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("record store init failed")
	}

	if *seedFile == "" {
		log.Info().Str("file", cfg.DataFile).Msg("data file ready")
		return
	}

	b, err := os.ReadFile(*seedFile)
	if err != nil {
		log.Fatal().Err(err).Str("seed", *seedFile).Msg("read seed file failed")
	}
	var incoming []domain.Hotel
	if err := json.Unmarshal(b, &incoming); err != nil {
		log.Fatal().Err(err).Msg("seed file is not a hotel collection")
	}

	hotels, err := store.LoadAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load existing collection failed")
	}
	existing := make(map[string]bool, len(hotels))
	for _, h := range hotels {
		existing[h.HotelID] = true
	}

	added := 0
	for _, h := range incoming {
		if existing[h.HotelID] {
			log.Warn().Str("hotelId", h.HotelID).Msg("skipping duplicate id")
			continue
		}
		if h.Images == nil {
			h.Images = []string{}
		}
		hotels = append(hotels, h)
		existing[h.HotelID] = true
		added++
	}

	if err := store.SaveAll(ctx, hotels); err != nil {
		log.Fatal().Err(err).Msg("save collection failed")
	}
	log.Info().Int("added", added).Int("total", len(hotels)).Msg("seeding completed")
}
