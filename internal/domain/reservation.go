package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Reservation references its room weakly, by hotel id plus room number; the
// room is resolved against the hotel document again at cancellation time.
// Fields other than rez_id are best-effort and may be absent.
type Reservation struct {
	CustomerID  ID     `json:"customer_id,omitempty"`
	RezID       ID     `json:"rez_id"`
	CustomerSts string `json:"customer_sts,omitempty"`
	HotelID     ID     `json:"hotel_id,omitempty"`
	RoomNumber  int    `json:"room_number"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// ReservationKey derives the storage key for a reservation id.
func ReservationKey(rezID ID) ID { return "reservation_" + rezID }

func (r *Reservation) Key() ID { return ReservationKey(r.RezID) }

func (r *Reservation) Validate() error {
	if r.RezID == "" {
		return fmt.Errorf("%w: rez_id missing", ErrMalformed)
	}
	return nil
}

// ReservationBuilder assembles a reservation from explicit optional fields.
// Identifier values are validated as they are set; the first failure sticks
// and is returned by Build.
type ReservationBuilder struct {
	r   Reservation
	err error
}

func NewReservation() *ReservationBuilder { return &ReservationBuilder{} }

func (b *ReservationBuilder) RezID(s string) *ReservationBuilder {
	b.setID(&b.r.RezID, s)
	return b
}

func (b *ReservationBuilder) Customer(s string) *ReservationBuilder {
	b.setID(&b.r.CustomerID, s)
	return b
}

func (b *ReservationBuilder) CustomerStatus(s string) *ReservationBuilder {
	b.r.CustomerSts = s
	return b
}

func (b *ReservationBuilder) Hotel(id ID) *ReservationBuilder {
	b.r.HotelID = id
	return b
}

func (b *ReservationBuilder) Room(number int) *ReservationBuilder {
	b.r.RoomNumber = number
	return b
}

func (b *ReservationBuilder) Dates(start, end string) *ReservationBuilder {
	b.r.StartDate = start
	b.r.EndDate = end
	return b
}

// Build returns the reservation. A missing rez_id defaults to a fresh UUID
// so the document key is always usable.
func (b *ReservationBuilder) Build() (Reservation, error) {
	if b.err != nil {
		return Reservation{}, b.err
	}
	if b.r.RezID == "" {
		b.r.RezID = ID(uuid.NewString())
	}
	return b.r, nil
}

func (b *ReservationBuilder) setID(dst *ID, s string) {
	if s == "" {
		return
	}
	id, err := ParseID(s)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return
	}
	*dst = id
}
