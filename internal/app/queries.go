package app

import (
	"context"
	"time"

	"hotelier/internal/domain"
)

type QueryService struct {
	store    domain.RecordStore
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService builds the read side. cache may be nil, in which case every
// lookup goes straight to the record store.
func NewQueryService(store domain.RecordStore, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: store, cache: cache, cacheTTL: ttl}
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	if s.cache != nil {
		var h domain.Hotel
		if ok, _ := s.cache.Get(ctx, hotelKey(id), &h); ok {
			return h, nil
		}
	}

	hotels, err := s.store.LoadAll(ctx)
	if err != nil {
		return domain.Hotel{}, err
	}
	idx := findHotel(hotels, id)
	if idx < 0 {
		return domain.Hotel{}, domain.ErrNotFound
	}

	h := hotels[idx]
	if s.cache != nil {
		_ = s.cache.Set(ctx, hotelKey(id), h, int(s.cacheTTL.Seconds()))
	}
	return h, nil
}

func hotelKey(id string) string { return "hotel:" + id }
