package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "documents_total", Help: "Document store operations."},
		[]string{"op"}, // op: save|load|delete
	)
	BookingEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "booking_events_total", Help: "Reservation workflow outcomes."},
		[]string{"event"}, // event: created|rejected|cancelled|cancel_miss
	)
	ReconcileFindings = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hoteldesk", Name: "reconcile_findings_total", Help: "Inconsistencies between room state and reservation documents."},
		[]string{"kind"}, // kind: orphan_room|orphan_reservation
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(DocumentOps, BookingEvents, ReconcileFindings)
	return reg
}

func ObserveDocument(op string)    { DocumentOps.WithLabelValues(op).Inc() }
func ObserveBooking(event string)  { BookingEvents.WithLabelValues(event).Inc() }
func ObserveReconcile(kind string) { ReconcileFindings.WithLabelValues(kind).Inc() }
