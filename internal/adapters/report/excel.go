package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hotel_desk/internal/domain"
)

// Workbook renders hotels and reservation documents into an xlsx summary:
// one Rooms sheet per hotel plus one Reservations sheet.
type Workbook struct {
	file    *excelize.File
	current string
	row     int
	sheets  int
}

func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// AddHotel writes a sheet named after the hotel with its room list.
func (w *Workbook) AddHotel(h *domain.Hotel) error {
	if err := w.addSheet(h.Name); err != nil {
		return err
	}
	if err := w.writeHeader([]string{"Room", "Status", "Location"}); err != nil {
		return err
	}
	for _, room := range h.Rooms {
		status := "Available"
		if !room.Available {
			status = "Reserved"
		}
		if err := w.writeRow([]any{room.Number, status, h.Location}); err != nil {
			return err
		}
	}
	return nil
}

// AddReservations writes the reservation documents sheet.
func (w *Workbook) AddReservations(rs []domain.Reservation) error {
	if err := w.addSheet("Reservations"); err != nil {
		return err
	}
	header := []string{"Reservation", "Customer", "Status", "Hotel", "Room", "Start", "End"}
	if err := w.writeHeader(header); err != nil {
		return err
	}
	for _, r := range rs {
		row := []any{string(r.RezID), string(r.CustomerID), r.CustomerSts, string(r.HotelID), r.RoomNumber, r.StartDate, r.EndDate}
		if err := w.writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) Write(out io.Writer) error    { return w.file.Write(out) }
func (w *Workbook) SaveToFile(path string) error { return w.file.SaveAs(path) }
func (w *Workbook) Close() error                 { return w.file.Close() }

func (w *Workbook) addSheet(name string) error {
	// Excel caps sheet names at 31 chars
	if len(name) > 31 {
		name = name[:31]
	}
	if w.sheets == 0 {
		w.file.SetSheetName("Sheet1", name)
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}
	w.sheets++
	w.current = name
	w.row = 1
	return nil
}

func (w *Workbook) writeHeader(columns []string) error {
	headerRow := w.row
	cells := make([]any, len(columns))
	for i, c := range columns {
		cells[i] = c
	}
	if err := w.writeRow(cells); err != nil {
		return err
	}
	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		start, _ := excelize.CoordinatesToCellName(1, headerRow)
		end, _ := excelize.CoordinatesToCellName(len(columns), headerRow)
		_ = w.file.SetCellStyle(w.current, start, end, style)
	}
	return nil
}

func (w *Workbook) writeRow(cells []any) error {
	for i, val := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.current, cell, val); err != nil {
			return err
		}
	}
	w.row++
	return nil
}
