package app

import (
	"errors"

	"github.com/rs/zerolog"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/domain"
)

type HotelService struct {
	store domain.DocumentStore
	rez   *ReservationService
	log   zerolog.Logger
}

func NewHotelService(store domain.DocumentStore, rez *ReservationService, log zerolog.Logger) *HotelService {
	return &HotelService{store: store, rez: rez, log: log}
}

// BookingParams carries the caller-supplied reservation fields. RezID may be
// empty, in which case the builder assigns one.
type BookingParams struct {
	RezID          string
	CustomerID     string
	CustomerStatus string
	RoomNumber     int
	StartDate      string
	EndDate        string
}

func (s *HotelService) Create(name, location string) (*domain.Hotel, error) {
	h, err := domain.NewHotel(name, location)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(h.Key(), h); err != nil {
		return nil, err
	}
	s.log.Info().Str("hotel", name).Msg("hotel created")
	return h, nil
}

func (s *HotelService) Load(name string) (*domain.Hotel, error) {
	key, err := domain.ParseID(name)
	if err != nil {
		return nil, err
	}
	var h domain.Hotel
	if err := s.store.Load(domain.HotelKey(key), &h); err != nil {
		return nil, err
	}
	if h.StorageKey == "" {
		// legacy document without a key field
		h.StorageKey = key
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *HotelService) AddRoom(h *domain.Hotel, number int) error {
	h.AddRoom(number)
	return s.store.Save(h.Key(), h)
}

// ReserveRoom books the first available room carrying the requested number.
// A missing or already-reserved room is a guard failure, reported as false
// with no side effects; only store failures surface as errors. The two
// resulting writes (reservation document, then hotel document) are not
// atomic; Reconcile surfaces the window.
func (s *HotelService) ReserveRoom(h *domain.Hotel, p BookingParams) (bool, error) {
	room := h.FindAvailable(p.RoomNumber)
	if room == nil {
		observability.ObserveBooking("rejected")
		s.log.Warn().Str("hotel", h.Name).Int("room", p.RoomNumber).Msg("room not available")
		return false, nil
	}
	rez, err := domain.NewReservation().
		RezID(p.RezID).
		Customer(p.CustomerID).
		CustomerStatus(p.CustomerStatus).
		Hotel(h.RefID()).
		Room(p.RoomNumber).
		Dates(p.StartDate, p.EndDate).
		Build()
	if err != nil {
		return false, err
	}
	room.Reserve()
	if err := s.rez.Create(rez); err != nil {
		room.Release()
		return false, err
	}
	if err := s.store.Save(h.Key(), h); err != nil {
		return false, err
	}
	observability.ObserveBooking("created")
	s.log.Info().
		Str("hotel", h.Name).
		Str("rez_id", string(rez.RezID)).
		Int("room", p.RoomNumber).
		Msg("room reserved")
	return true, nil
}

// CancelReservation is idempotent: a missing reservation document means
// "already cancelled" and reports false. The room is matched by number only
// against this hotel's list; the reservation's hotel_id is not checked,
// matching the historical workflow.
func (s *HotelService) CancelReservation(h *domain.Hotel, rezID string) (bool, error) {
	id, err := domain.ParseID(rezID)
	if err != nil {
		return false, err
	}
	var rez domain.Reservation
	if err := s.store.Load(domain.ReservationKey(id), &rez); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			observability.ObserveBooking("cancel_miss")
			return false, nil
		}
		return false, err
	}
	room := h.FindRoom(rez.RoomNumber)
	if room == nil {
		s.log.Warn().Str("rez_id", rezID).Int("room", rez.RoomNumber).Msg("reserved room not in hotel")
		return false, nil
	}
	room.Release()
	if err := s.store.Delete(domain.ReservationKey(id)); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	if err := s.store.Save(h.Key(), h); err != nil {
		return false, err
	}
	observability.ObserveBooking("cancelled")
	s.log.Info().Str("hotel", h.Name).Str("rez_id", rezID).Int("room", rez.RoomNumber).Msg("reservation cancelled")
	return true, nil
}

// Modify updates only the provided fields and re-persists the full record.
// The storage key is fixed at creation, so a rename never moves the backing
// document or invalidates hotel_id references held by reservations.
func (s *HotelService) Modify(h *domain.Hotel, newName, newLocation *string) error {
	if newName != nil {
		h.Name = *newName
	}
	if newLocation != nil {
		h.Location = *newLocation
	}
	return s.store.Save(h.Key(), h)
}

// Delete removes the hotel document. Outstanding reservation documents stay
// in place; they reference the hotel weakly and double as history.
func (s *HotelService) Delete(h *domain.Hotel) error {
	if err := s.store.Delete(h.Key()); err != nil {
		return err
	}
	s.log.Info().Str("hotel", h.Name).Msg("hotel deleted")
	return nil
}
