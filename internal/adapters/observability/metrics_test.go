package observability_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"hotel_desk/internal/adapters/observability"
)

func TestRegistryGathersCounters(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveBooking("created")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range mfs {
		if mf.GetName() == "hoteldesk_booking_events_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected hoteldesk_booking_events_total in output")
	}
	if got := testutil.ToFloat64(observability.BookingEvents.WithLabelValues("created")); got < 1 {
		t.Fatalf("expected created counter >= 1, got %v", got)
	}
}
