// Package uploads is the flat directory holding raw uploaded image bytes,
// served back by this process under the /uploads/ URL prefix.
package uploads

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotelier/internal/adapters/observability"
)

type Store struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes r to the upload area under a timestamp-prefixed name. The
// original basename survives in the stored name so URLs stay recognizable;
// there is no collision handling beyond the millisecond timestamp.
func (s *Store) Save(ctx context.Context, origName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(origName))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	n, err := io.Copy(dst, r)
	if err != nil {
		return "", err
	}
	observability.ObserveUpload(n)
	return name, nil
}

func (s *Store) URL(storedName string) string {
	return s.baseURL + "/uploads/" + storedName
}

// Handler serves stored bytes; mount it under /uploads/*.
func (s *Store) Handler() http.Handler {
	return http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.dir)))
}

// sanitize strips path components from a client-supplied filename so uploads
// cannot escape the upload directory.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "" {
		return "upload"
	}
	return name
}
