package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hotel_desk/internal/adapters/report"
	"hotel_desk/internal/domain"
)

func TestWorkbookRoundTrip(t *testing.T) {
	h := &domain.Hotel{StorageKey: "Test Hotel", Name: "Test Hotel", Location: "Test Location"}
	h.AddRoom(152)
	h.AddRoom(153)
	h.Rooms[0].Reserve()

	rezs := []domain.Reservation{{
		RezID:       "rez1",
		CustomerID:  "cust1",
		CustomerSts: "Gold",
		HotelID:     "Test Hotel",
		RoomNumber:  152,
		StartDate:   "2023-01-01",
		EndDate:     "2023-01-05",
	}}

	wb := report.NewWorkbook()
	defer wb.Close()
	require.NoError(t, wb.AddHotel(h))
	require.NoError(t, wb.AddReservations(rezs))

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Test Hotel", "Reservations"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Room", cell("Test Hotel", "A1"))
	assert.Equal(t, "152", cell("Test Hotel", "A2"))
	assert.Equal(t, "Reserved", cell("Test Hotel", "B2"))
	assert.Equal(t, "153", cell("Test Hotel", "A3"))
	assert.Equal(t, "Available", cell("Test Hotel", "B3"))

	assert.Equal(t, "rez1", cell("Reservations", "A2"))
	assert.Equal(t, "Gold", cell("Reservations", "C2"))
	assert.Equal(t, "152", cell("Reservations", "E2"))
}

func TestWorkbookTruncatesLongSheetNames(t *testing.T) {
	h := &domain.Hotel{Name: "An Exceedingly Long Hotel Name Beyond The Sheet Limit"}

	wb := report.NewWorkbook()
	defer wb.Close()
	require.NoError(t, wb.AddHotel(h))

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.LessOrEqual(t, len(sheets[0]), 31)
}
