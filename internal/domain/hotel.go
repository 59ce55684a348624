package domain

// Room is a value type embedded in a Hotel. Slugs are only unique within the
// owning hotel.
type Room struct {
	RoomSlug     string `json:"roomSlug"`
	RoomImage    string `json:"roomImage"`
	RoomTitle    string `json:"roomTitle"`
	BedroomCount int    `json:"bedroomCount"`
}

type Hotel struct {
	HotelID       string   `json:"hotelId"`
	Slug          string   `json:"slug"`
	Images        []string `json:"images"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	GuestCount    int      `json:"guestCount"`
	BedroomCount  int      `json:"bedroomCount"`
	BathroomCount int      `json:"bathroomCount"`
	Amenities     []string `json:"amenities"`
	HostInfo      string   `json:"hostInfo"`
	Address       string   `json:"address"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Rooms         []Room   `json:"rooms"`
}

// HotelInput is a fully validated create/update payload. HotelID and Slug are
// never part of it: the id is server-assigned and the slug derived from the
// title. Images carries an explicit image list only when the request body
// included one; ImagesSet distinguishes an empty list from an absent key.
type HotelInput struct {
	Title         string
	Description   string
	GuestCount    int
	BedroomCount  int
	BathroomCount int
	Amenities     []string
	HostInfo      string
	Address       string
	Latitude      float64
	Longitude     float64
	Rooms         []Room
	Images        []string
	ImagesSet     bool
}
