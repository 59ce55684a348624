package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"

	"hotelier/internal/domain"
)

// CommandService owns every mutation of the hotel collection. A single mutex
// serializes the whole load-mutate-save cycle so two overlapping writers
// cannot silently drop each other's changes; within the lock each operation
// still reloads the collection from durable storage.
type CommandService struct {
	store domain.RecordStore
	files domain.FileStore
	cache domain.Cache

	mu sync.Mutex
}

func NewCommandService(store domain.RecordStore, files domain.FileStore, cache domain.Cache) *CommandService {
	return &CommandService{store: store, files: files, cache: cache}
}

// Upload is one incoming file from a multipart request.
type Upload struct {
	Name   string
	Reader io.Reader
}

func (s *CommandService) Create(ctx context.Context, in domain.HotelInput) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotels, err := s.store.LoadAll(ctx)
	if err != nil {
		return domain.Hotel{}, err
	}

	h := domain.Hotel{
		HotelID:       nextID(hotels),
		Slug:          slug.Make(in.Title),
		Images:        []string{},
		Title:         in.Title,
		Description:   in.Description,
		GuestCount:    in.GuestCount,
		BedroomCount:  in.BedroomCount,
		BathroomCount: in.BathroomCount,
		Amenities:     in.Amenities,
		HostInfo:      in.HostInfo,
		Address:       in.Address,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Rooms:         in.Rooms,
	}

	hotels = append(hotels, h)
	if err := s.store.SaveAll(ctx, hotels); err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, h.HotelID)
	log.Info().Str("hotelId", h.HotelID).Str("slug", h.Slug).Msg("hotel created")
	return h, nil
}

// Update replaces the stored record with the validated input. The hotel id is
// always restored from the stored record, the slug is recomputed from the
// incoming title, and the image list survives unless the request body carried
// an explicit images key.
func (s *CommandService) Update(ctx context.Context, id string, in domain.HotelInput) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotels, err := s.store.LoadAll(ctx)
	if err != nil {
		return domain.Hotel{}, err
	}
	idx := findHotel(hotels, id)
	if idx < 0 {
		return domain.Hotel{}, domain.ErrNotFound
	}

	prev := hotels[idx]
	next := domain.Hotel{
		HotelID:       prev.HotelID,
		Slug:          slug.Make(in.Title),
		Images:        prev.Images,
		Title:         in.Title,
		Description:   in.Description,
		GuestCount:    in.GuestCount,
		BedroomCount:  in.BedroomCount,
		BathroomCount: in.BathroomCount,
		Amenities:     in.Amenities,
		HostInfo:      in.HostInfo,
		Address:       in.Address,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Rooms:         in.Rooms,
	}
	if in.ImagesSet {
		next.Images = in.Images
	}

	hotels[idx] = next
	if err := s.store.SaveAll(ctx, hotels); err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, id)
	log.Info().Str("hotelId", id).Msg("hotel updated")
	return next, nil
}

// AttachImages persists the uploads to the file area, then appends their URLs
// to the hotel's image list. Files land on disk before the hotel lookup, so a
// miss leaves them orphaned in the upload area; that matches the documented
// behavior and is only logged, not cleaned up.
func (s *CommandService) AttachImages(ctx context.Context, hotelID string, uploads []Upload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, u := range uploads {
		name, err := s.files.Save(ctx, u.Name, u.Reader)
		if err != nil {
			return nil, fmt.Errorf("save upload %q: %w", u.Name, err)
		}
		urls = append(urls, s.files.URL(name))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hotels, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := findHotel(hotels, hotelID)
	if idx < 0 {
		if len(urls) > 0 {
			log.Warn().Str("hotelId", hotelID).Int("orphaned", len(urls)).
				Msg("upload target not found; files left in upload area")
		}
		return nil, domain.ErrNotFound
	}

	hotels[idx].Images = append(hotels[idx].Images, urls...)
	if err := s.store.SaveAll(ctx, hotels); err != nil {
		return nil, err
	}
	s.invalidate(ctx, hotelID)
	log.Info().Str("hotelId", hotelID).Int("added", len(urls)).Msg("images attached")
	return hotels[idx].Images, nil
}

func (s *CommandService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, hotelKey(id))
}

// nextID returns "hotel-N" with N one past the highest numeric suffix present
// in the collection. Deriving N from stored ids rather than the collection
// length keeps ids unique even if records were removed out-of-band.
func nextID(hotels []domain.Hotel) string {
	max := 0
	for _, h := range hotels {
		suffix, ok := strings.CutPrefix(h.HotelID, "hotel-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("hotel-%d", max+1)
}

func findHotel(hotels []domain.Hotel, id string) int {
	for i := range hotels {
		if hotels[i].HotelID == id {
			return i
		}
	}
	return -1
}
