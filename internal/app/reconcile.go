package app

import (
	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/domain"
)

// Finding kinds for the two halves of the non-atomic reservation write.
const (
	FindingOrphanRoom        = "orphan_room"        // room reserved, no backing document
	FindingOrphanReservation = "orphan_reservation" // document present, room available or unknown
)

// Finding describes one inconsistency between a hotel's room states and the
// reservation documents on disk.
type Finding struct {
	Kind       string
	RoomNumber int
	RezID      domain.ID
}

// Reconcile scans every reservation document referencing the hotel and
// reports both halves of the two-file inconsistency window. With repair set,
// reserved rooms that lack a backing document are released and the hotel is
// persisted. Reservation documents are never deleted here; discarding
// history is left to the caller.
func (s *HotelService) Reconcile(h *domain.Hotel, repair bool) ([]Finding, error) {
	keys, err := s.store.List("reservation_")
	if err != nil {
		return nil, err
	}
	booked := make(map[int]domain.ID)
	var findings []Finding
	for _, key := range keys {
		var rez domain.Reservation
		if err := s.store.Load(key, &rez); err != nil {
			return nil, err
		}
		if rez.HotelID != h.RefID() {
			continue
		}
		room := h.FindRoom(rez.RoomNumber)
		if room == nil || room.Available {
			findings = append(findings, Finding{Kind: FindingOrphanReservation, RoomNumber: rez.RoomNumber, RezID: rez.RezID})
			observability.ObserveReconcile(FindingOrphanReservation)
			continue
		}
		booked[rez.RoomNumber] = rez.RezID
	}

	changed := false
	for i := range h.Rooms {
		room := &h.Rooms[i]
		if room.Available {
			continue
		}
		if _, ok := booked[room.Number]; ok {
			continue
		}
		findings = append(findings, Finding{Kind: FindingOrphanRoom, RoomNumber: room.Number})
		observability.ObserveReconcile(FindingOrphanRoom)
		if repair {
			room.Release()
			changed = true
		}
	}
	if changed {
		if err := s.store.Save(h.Key(), h); err != nil {
			return findings, err
		}
		s.log.Info().Str("hotel", h.Name).Int("findings", len(findings)).Msg("reconcile repaired room state")
	}
	return findings, nil
}
