package app_test

import (
	"encoding/json"
	"errors"
	"testing"

	"hotelier/internal/app"
	"hotelier/internal/domain"
)

// validPayload returns a fresh payload passing all three validation stages.
func validPayload() map[string]any {
	var payload map[string]any
	body := `{
		"title": "Test Hotel",
		"description": "Test Description",
		"guestCount": 4,
		"bedroomCount": 2,
		"bathroomCount": 1,
		"amenities": ["Wifi", "Pool"],
		"hostInfo": "John Doe",
		"address": "123 Test St",
		"latitude": 45.123,
		"longitude": -93.123,
		"rooms": [
			{"roomSlug": "test-room", "roomImage": "test.jpg", "roomTitle": "Test Room", "bedroomCount": 1}
		]
	}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		panic(err)
	}
	return payload
}

func TestValidate_Valid(t *testing.T) {
	in, err := app.ValidateHotelPayload(validPayload())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if in.Title != "Test Hotel" || in.GuestCount != 4 || in.Latitude != 45.123 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Rooms) != 1 || in.Rooms[0].RoomSlug != "test-room" || in.Rooms[0].BedroomCount != 1 {
		t.Fatalf("unexpected rooms: %+v", in.Rooms)
	}
	if in.ImagesSet {
		t.Fatal("images must not be marked set when the key is absent")
	}
}

func TestValidate_ZeroCoordinatesAllowed(t *testing.T) {
	p := validPayload()
	p["latitude"] = 0.0
	p["longitude"] = 0.0
	if _, err := app.ValidateHotelPayload(p); err != nil {
		t.Fatalf("zero coordinates must pass, got %v", err)
	}
}

func TestValidate_ExplicitImages(t *testing.T) {
	p := validPayload()
	p["images"] = []any{"http://localhost:8080/uploads/a.jpg"}
	in, err := app.ValidateHotelPayload(p)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !in.ImagesSet || len(in.Images) != 1 {
		t.Fatalf("expected explicit images, got %+v", in)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]any)
		want   error
	}{
		{"missing title", func(p map[string]any) { delete(p, "title") }, domain.ErrMissingFields},
		{"empty title", func(p map[string]any) { p["title"] = "" }, domain.ErrMissingFields},
		{"zero guest count is falsy", func(p map[string]any) { p["guestCount"] = 0.0 }, domain.ErrMissingFields},
		{"missing latitude", func(p map[string]any) { delete(p, "latitude") }, domain.ErrMissingFields},
		{"null latitude", func(p map[string]any) { p["latitude"] = nil }, domain.ErrInvalidTypes},
		{"string guest count", func(p map[string]any) { p["guestCount"] = "4" }, domain.ErrInvalidTypes},
		{"non-array amenities", func(p map[string]any) { p["amenities"] = "wifi" }, domain.ErrInvalidTypes},
		{"non-string amenity element", func(p map[string]any) { p["amenities"] = []any{"wifi", 2.0} }, domain.ErrInvalidTypes},
		{"numeric title", func(p map[string]any) { p["title"] = 12.0 }, domain.ErrInvalidTypes},
		{"non-array rooms", func(p map[string]any) { p["rooms"] = "room" }, domain.ErrInvalidTypes},
		{"non-array images", func(p map[string]any) { p["images"] = "a.jpg" }, domain.ErrInvalidTypes},
		{
			"room missing bedroomCount",
			func(p map[string]any) {
				p["rooms"] = []any{map[string]any{"roomSlug": "r", "roomImage": "r.jpg", "roomTitle": "R"}}
			},
			domain.ErrInvalidRoomShape,
		},
		{
			"room with string bedroomCount",
			func(p map[string]any) {
				p["rooms"] = []any{map[string]any{"roomSlug": "r", "roomImage": "r.jpg", "roomTitle": "R", "bedroomCount": "1"}}
			},
			domain.ErrInvalidRoomShape,
		},
		{"non-object room", func(p map[string]any) { p["rooms"] = []any{"room"} }, domain.ErrInvalidRoomShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			tc.mutate(p)
			_, err := app.ValidateHotelPayload(p)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate_MissingBeatsInvalidTypes(t *testing.T) {
	// presence failures short-circuit before type checks
	p := validPayload()
	p["guestCount"] = "4" // type error
	delete(p, "title")    // presence error
	_, err := app.ValidateHotelPayload(p)
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("presence check must run first, got %v", err)
	}
}
