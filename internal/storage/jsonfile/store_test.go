package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"hotelier/internal/domain"
	"hotelier/internal/storage/jsonfile"
)

func tmpStore(t *testing.T) (*jsonfile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hotels.json")
	return jsonfile.New(path), path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := tmpStore(t)
	ctx := context.Background()

	hotels := []domain.Hotel{{
		HotelID: "hotel-1", Slug: "existing-hotel", Title: "Existing Hotel",
		Images:    []string{"/uploads/test.jpg"},
		Amenities: []string{"Wifi"},
		Rooms:     []domain.Room{{RoomSlug: "r1", RoomImage: "r1.jpg", RoomTitle: "R1", BedroomCount: 1}},
	}}
	if err := s.SaveAll(ctx, hotels); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, hotels) {
		t.Fatalf("roundtrip mismatch:\nwant %+v\ngot  %+v", hotels, got)
	}
}

func TestSaveWritesPrettyPrintedJSON(t *testing.T) {
	s, path := tmpStore(t)
	if err := s.SaveAll(context.Background(), []domain.Hotel{{HotelID: "hotel-1"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "\n  ") {
		t.Fatalf("expected indented output, got %q", b)
	}
}

func TestSaveNilWritesEmptyCollection(t *testing.T) {
	s, _ := tmpStore(t)
	if err := s.SaveAll(context.Background(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, _ := tmpStore(t)
	_, err := s.LoadAll(context.Background())
	if !errors.Is(err, domain.ErrStorageRead) {
		t.Fatalf("want ErrStorageRead, got %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s, path := tmpStore(t)
	if err := os.WriteFile(path, []byte("not json{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := s.LoadAll(context.Background())
	if !errors.Is(err, domain.ErrStorageRead) {
		t.Fatalf("want ErrStorageRead, got %v", err)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "hotels.json")
	s := jsonfile.New(path)
	ctx := context.Background()

	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	got, err := s.LoadAll(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty collection after init, got %v %v", got, err)
	}

	// a second Init must not clobber existing data
	if err := s.SaveAll(ctx, []domain.Hotel{{HotelID: "hotel-1"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Init(ctx); err != nil {
		t.Fatalf("reinit: %v", err)
	}
	got, _ = s.LoadAll(ctx)
	if len(got) != 1 {
		t.Fatalf("init overwrote existing data: %+v", got)
	}
}
