package domain

import "fmt"

// Room is owned by its Hotel and lives inside the hotel document; it is
// never persisted on its own. Availability is the only state it carries.
type Room struct {
	Number    int  `json:"room_number"`
	Available bool `json:"room_available"`
}

func (r *Room) Reserve() { r.Available = false }
func (r *Room) Release() { r.Available = true }

type Hotel struct {
	// StorageKey is fixed at creation. The backing document is derived from
	// it, never from the current Name, so renaming a hotel cannot move the
	// file or orphan reservation references.
	StorageKey ID     `json:"key,omitempty"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Rooms      []Room `json:"rooms"`
}

func NewHotel(name, location string) (*Hotel, error) {
	key, err := ParseID(name)
	if err != nil {
		return nil, err
	}
	return &Hotel{StorageKey: key, Name: name, Location: location, Rooms: []Room{}}, nil
}

// HotelKey derives the document key from a hotel's storage key.
func HotelKey(key ID) ID { return key + "_data" }

func (h *Hotel) Key() ID { return HotelKey(h.RefID()) }

// RefID is the identifier reservations store to point back at the hotel.
// Documents written by the legacy layout carry no key field; for those the
// name doubles as the key.
func (h *Hotel) RefID() ID {
	if h.StorageKey != "" {
		return h.StorageKey
	}
	return ID(h.Name)
}

func (h *Hotel) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("%w: name missing", ErrMalformed)
	}
	return nil
}

// AddRoom appends a room in available state. Number uniqueness is the
// caller's responsibility.
func (h *Hotel) AddRoom(number int) {
	h.Rooms = append(h.Rooms, Room{Number: number, Available: true})
}

// FindRoom returns the first room with the number, nil if absent.
func (h *Hotel) FindRoom(number int) *Room {
	for i := range h.Rooms {
		if h.Rooms[i].Number == number {
			return &h.Rooms[i]
		}
	}
	return nil
}

// FindAvailable returns the first available room with the number, nil if the
// number is unknown or every such room is reserved.
func (h *Hotel) FindAvailable(number int) *Room {
	for i := range h.Rooms {
		if h.Rooms[i].Number == number && h.Rooms[i].Available {
			return &h.Rooms[i]
		}
	}
	return nil
}

// Display renders the hotel record card.
func (h *Hotel) Display() string {
	return fmt.Sprintf("Hotel Name: %s, Location: %s", h.Name, h.Location)
}
