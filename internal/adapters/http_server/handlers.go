package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"hotelier/internal/app"
	"hotelier/internal/domain"
)

// maxUploadFiles caps the number of files accepted per /images request.
const maxUploadFiles = 10

// multipartMemory is the in-memory buffer limit for multipart parsing; larger
// parts spill to temp files.
const multipartMemory = 32 << 20

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService

	AppEnv         string
	UploadLimit    *rate.Limiter
	MaxUploadBytes int64
}

type apiMessage struct {
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Images  []string `json:"images,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Group(func(r chi.Router) {
		r.Use(Timeout(15 * time.Second))
		r.Post("/hotel", h.createHotel)
		r.Get("/hotel/{hotelId}", h.getHotel)
		r.Put("/hotel/{hotelId}", h.updateHotel)
	})

	// no timeout wrapper here: large multipart bodies may legitimately take
	// longer than the JSON endpoints are allowed to
	s.mux.Group(func(r chi.Router) {
		r.Use(RateLimit(h.UploadLimit))
		r.Post("/images", h.uploadImages)
	})
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	in, err := h.validatedInput(r)
	if err != nil {
		h.writeValidation(w, err)
		return
	}
	hotel, err := h.C.Create(r.Context(), in)
	if err != nil {
		h.writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Q.GetHotel(r.Context(), chi.URLParam(r, "hotelId"))
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		h.writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	in, err := h.validatedInput(r)
	if err != nil {
		h.writeValidation(w, err)
		return
	}
	hotel, err := h.C.Update(r.Context(), chi.URLParam(r, "hotelId"), in)
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		h.writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) uploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.writeUploadError(w, err)
		return
	}
	hotelID := r.FormValue("hotelId")
	files := r.MultipartForm.File["images"]
	if len(files) > maxUploadFiles {
		h.writeUploadError(w, fmt.Errorf("%w: got %d, limit %d", domain.ErrTooManyFiles, len(files), maxUploadFiles))
		return
	}

	ups := make([]app.Upload, 0, len(files))
	for _, fh := range files {
		if h.MaxUploadBytes > 0 && fh.Size > h.MaxUploadBytes {
			h.writeUploadError(w, fmt.Errorf("file %q exceeds %d bytes", fh.Filename, h.MaxUploadBytes))
			return
		}
		f, err := fh.Open()
		if err != nil {
			h.writeUploadError(w, err)
			return
		}
		defer f.Close()
		ups = append(ups, app.Upload{Name: fh.Filename, Reader: f})
	}

	images, err := h.C.AttachImages(r.Context(), hotelID, ups)
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		h.writeUploadError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apiMessage{Message: "Images uploaded successfully", Images: images})
}

// validatedInput decodes the body into an untyped payload and runs the full
// validator. Undecodable or non-object bodies validate the same as an empty
// payload, which fails the presence check.
func (h *Handlers) validatedInput(r *http.Request) (domain.HotelInput, error) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		payload = map[string]any{}
	}
	return app.ValidateHotelPayload(payload)
}

func (h *Handlers) writeValidation(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, domain.ErrInvalidTypes):
		writeMessage(w, http.StatusBadRequest, "Invalid data types")
	case errors.Is(err, domain.ErrInvalidRoomShape):
		writeMessage(w, http.StatusBadRequest, "Invalid room data structure")
	default:
		h.writeInternal(w, err)
	}
}

func (h *Handlers) writeInternal(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, apiMessage{Message: "Something went wrong!", Error: h.detail(err)})
}

func (h *Handlers) writeUploadError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("image upload failed")
	writeJSON(w, http.StatusInternalServerError, apiMessage{Message: "Error uploading images", Error: h.detail(err)})
}

// detail exposes error text only in dev; suppressed otherwise.
func (h *Handlers) detail(err error) string {
	if h.AppEnv == "dev" || h.AppEnv == "development" {
		return err.Error()
	}
	return ""
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiMessage{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}
