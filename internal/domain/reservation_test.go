package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"hotel_desk/internal/domain"
)

func TestReservationBuilder(t *testing.T) {
	rez, err := domain.NewReservation().
		RezID("rez1").
		Customer("cust1").
		CustomerStatus("Gold").
		Hotel("Test Hotel").
		Room(152).
		Dates("2023-01-01", "2023-01-05").
		Build()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rez.RezID != "rez1" || rez.CustomerID != "cust1" || rez.HotelID != "Test Hotel" {
		t.Fatalf("unexpected reservation: %+v", rez)
	}
	if rez.RoomNumber != 152 || rez.StartDate != "2023-01-01" || rez.EndDate != "2023-01-05" {
		t.Fatalf("unexpected reservation: %+v", rez)
	}
	if rez.Key() != "reservation_rez1" {
		t.Fatalf("unexpected key: %q", rez.Key())
	}
}

func TestReservationBuilder_DefaultsRezID(t *testing.T) {
	rez, err := domain.NewReservation().Room(7).Build()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rez.RezID == "" {
		t.Fatalf("expected a generated rez_id")
	}
	if _, err := uuid.Parse(string(rez.RezID)); err != nil {
		t.Fatalf("expected a UUID rez_id, got %q", rez.RezID)
	}
}

func TestReservationBuilder_InvalidID(t *testing.T) {
	_, err := domain.NewReservation().Customer("../etc").Build()
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"rez1", true},
		{"Test Hotel", true},
		{"", false},
		{"   ", false},
		{"a/b", false},
		{`a\b`, false},
		{"..", false},
	}
	for _, c := range cases {
		_, err := domain.ParseID(c.in)
		if c.ok && err != nil {
			t.Fatalf("%q: unexpected err %v", c.in, err)
		}
		if !c.ok && !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("%q: expected ErrInvalidID, got %v", c.in, err)
		}
	}
}
