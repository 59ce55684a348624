// Package jsonfile persists the full hotel collection as one pretty-printed
// JSON document. Every load reads the whole file, every save replaces it; a
// crash mid-write can corrupt the file, which is accepted for this store.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hotelier/internal/adapters/observability"
	"hotelier/internal/domain"
)

type Store struct{ path string }

func New(path string) *Store { return &Store{path: path} }

func (s *Store) LoadAll(ctx context.Context) ([]domain.Hotel, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		observability.ObserveStore("load", "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageRead, err)
	}
	var hotels []domain.Hotel
	if err := json.Unmarshal(b, &hotels); err != nil {
		observability.ObserveStore("load", "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageRead, err)
	}
	observability.ObserveStore("load", "ok")
	return hotels, nil
}

func (s *Store) SaveAll(ctx context.Context, hotels []domain.Hotel) error {
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	b, err := json.MarshalIndent(hotels, "", "  ")
	if err != nil {
		observability.ObserveStore("save", "error")
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		observability.ObserveStore("save", "error")
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	observability.ObserveStore("save", "ok")
	return nil
}

// Init creates the data file with an empty collection when it does not exist
// yet. LoadAll on a missing file still fails; Init is a boot-time convenience.
func (s *Store) Init(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return s.SaveAll(ctx, nil)
}
