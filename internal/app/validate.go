package app

import (
	"hotelier/internal/domain"
)

// requiredFields in declaration order. latitude and longitude are special
// cased during the presence check so that 0 passes.
var requiredFields = []string{
	"title", "description", "guestCount", "bedroomCount", "bathroomCount",
	"amenities", "hostInfo", "address", "latitude", "longitude", "rooms",
}

// ValidateHotelPayload checks an untyped JSON payload in three short-circuit
// stages (presence, field types, room shape) and converts it into a
// domain.HotelInput. The same validation applies to create and update:
// a partial body is rejected, update is full-record replace.
func ValidateHotelPayload(payload map[string]any) (domain.HotelInput, error) {
	for _, k := range requiredFields {
		v, ok := payload[k]
		if k == "latitude" || k == "longitude" {
			// 0 is a legitimate coordinate; only absence fails here, an
			// explicit null falls through to the type check
			if !ok {
				return domain.HotelInput{}, domain.ErrMissingFields
			}
			continue
		}
		if !ok || falsy(v) {
			return domain.HotelInput{}, domain.ErrMissingFields
		}
	}

	title, okTitle := payload["title"].(string)
	description, okDesc := payload["description"].(string)
	hostInfo, okHost := payload["hostInfo"].(string)
	address, okAddr := payload["address"].(string)
	guests, okGuests := payload["guestCount"].(float64)
	bedrooms, okBeds := payload["bedroomCount"].(float64)
	bathrooms, okBaths := payload["bathroomCount"].(float64)
	lat, okLat := payload["latitude"].(float64)
	lon, okLon := payload["longitude"].(float64)
	rawAmenities, okAmen := payload["amenities"].([]any)
	rawRooms, okRooms := payload["rooms"].([]any)
	if !okTitle || !okDesc || !okHost || !okAddr ||
		!okGuests || !okBeds || !okBaths || !okLat || !okLon ||
		!okAmen || !okRooms {
		return domain.HotelInput{}, domain.ErrInvalidTypes
	}

	amenities := make([]string, 0, len(rawAmenities))
	for _, a := range rawAmenities {
		s, ok := a.(string)
		if !ok {
			return domain.HotelInput{}, domain.ErrInvalidTypes
		}
		amenities = append(amenities, s)
	}

	rooms := make([]domain.Room, 0, len(rawRooms))
	for _, rv := range rawRooms {
		room, ok := asRoom(rv)
		if !ok {
			return domain.HotelInput{}, domain.ErrInvalidRoomShape
		}
		rooms = append(rooms, room)
	}

	in := domain.HotelInput{
		Title:         title,
		Description:   description,
		GuestCount:    int(guests),
		BedroomCount:  int(bedrooms),
		BathroomCount: int(bathrooms),
		Amenities:     amenities,
		HostInfo:      hostInfo,
		Address:       address,
		Latitude:      lat,
		Longitude:     lon,
		Rooms:         rooms,
	}

	// images is optional and only honored when explicitly present; it must be
	// a list of URLs when given.
	if raw, ok := payload["images"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return domain.HotelInput{}, domain.ErrInvalidTypes
		}
		images := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := v.(string)
			if !ok {
				return domain.HotelInput{}, domain.ErrInvalidTypes
			}
			images = append(images, s)
		}
		in.Images = images
		in.ImagesSet = true
	}

	return in, nil
}

func asRoom(v any) (domain.Room, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.Room{}, false
	}
	slug, okSlug := m["roomSlug"].(string)
	image, okImage := m["roomImage"].(string)
	title, okTitle := m["roomTitle"].(string)
	beds, okBeds := m["bedroomCount"].(float64)
	if !okSlug || !okImage || !okTitle || !okBeds {
		return domain.Room{}, false
	}
	return domain.Room{
		RoomSlug:     slug,
		RoomImage:    image,
		RoomTitle:    title,
		BedroomCount: int(beds),
	}, true
}

// falsy mirrors the JSON-side notion of an empty value: null, "", 0, false.
// Arrays and objects are never falsy, even when empty.
func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}
