package app_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"hotelier/internal/app"
	"hotelier/internal/domain"
)

func TestGetHotel_IsLeftInverseOfCreate(t *testing.T) {
	store := &fakeStore{}
	cmd := app.NewCommandService(store, &fakeFiles{}, nil)
	q := app.NewQueryService(store, nil, time.Minute)

	created, err := cmd.Create(context.Background(), testInput("Round Trip Hotel"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := q.GetHotel(context.Background(), created.HotelID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("mismatch:\ncreated %+v\ngot     %+v", created, got)
	}
}

func TestGetHotel_NotFound(t *testing.T) {
	q := app.NewQueryService(&fakeStore{}, nil, time.Minute)
	_, err := q.GetHotel(context.Background(), "hotel-404")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	store := &fakeStore{hotels: []domain.Hotel{{HotelID: "hotel-1", Title: "Cached Hotel"}}}
	cache := &fakeCache{}
	q := app.NewQueryService(store, cache, 10*time.Minute)

	// miss populates the cache
	h, err := q.GetHotel(context.Background(), "hotel-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Title != "Cached Hotel" {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	// mutate the store to prove the second read is served from cache
	store.hotels[0].Title = "SHOULD NOT SEE THIS"

	h2, err := q.GetHotel(context.Background(), "hotel-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h2.Title != "Cached Hotel" {
		t.Fatalf("expected cached title, got %s", h2.Title)
	}
}

func TestGetHotel_StorageErrorPropagates(t *testing.T) {
	q := app.NewQueryService(&fakeStore{fail: domain.ErrStorageRead}, nil, time.Minute)
	_, err := q.GetHotel(context.Background(), "hotel-1")
	if !errors.Is(err, domain.ErrStorageRead) {
		t.Fatalf("want ErrStorageRead, got %v", err)
	}
}
