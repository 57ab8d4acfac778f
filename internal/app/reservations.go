package app

import (
	"github.com/rs/zerolog"

	"hotel_desk/internal/domain"
)

type ReservationService struct {
	store domain.DocumentStore
	log   zerolog.Logger
}

func NewReservationService(store domain.DocumentStore, log zerolog.Logger) *ReservationService {
	return &ReservationService{store: store, log: log}
}

// Create persists the reservation document under its rez_id.
func (s *ReservationService) Create(r domain.Reservation) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(r.Key(), &r); err != nil {
		return err
	}
	s.log.Info().
		Str("rez_id", string(r.RezID)).
		Str("hotel_id", string(r.HotelID)).
		Int("room", r.RoomNumber).
		Msg("reservation created")
	return nil
}

func (s *ReservationService) Load(rezID string) (*domain.Reservation, error) {
	id, err := domain.ParseID(rezID)
	if err != nil {
		return nil, err
	}
	var r domain.Reservation
	if err := s.store.Load(domain.ReservationKey(id), &r); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListAll loads every reservation document found by key prefix.
func (s *ReservationService) ListAll() ([]domain.Reservation, error) {
	keys, err := s.store.List("reservation_")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reservation, 0, len(keys))
	for _, key := range keys {
		var r domain.Reservation
		if err := s.store.Load(key, &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Cancel removes the backing document if present. A missing document is
// reported in the log only; nothing is raised to the caller.
func (s *ReservationService) Cancel(rezID string) {
	id, err := domain.ParseID(rezID)
	if err != nil {
		s.log.Warn().Str("rez_id", rezID).Err(err).Msg("cannot cancel reservation")
		return
	}
	if err := s.store.Delete(domain.ReservationKey(id)); err != nil {
		s.log.Warn().Str("rez_id", rezID).Msg("reservation not found")
		return
	}
	s.log.Info().Str("rez_id", rezID).Msg("reservation cancelled")
}
