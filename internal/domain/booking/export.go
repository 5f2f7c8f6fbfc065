package booking

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportHeaders = []string{"ID", "Gym", "Address", "Type", "Date", "Time Slot", "Status", "Notes", "Created"}

// WriteXLSX renders bookings as a single-sheet workbook.
func WriteXLSX(w io.Writer, bookings []View) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
		_ = f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		values := []any{
			b.ID,
			gymField(b, func(g *GymRef) string { return g.Name }),
			gymField(b, func(g *GymRef) string { return g.Address }),
			b.BookingType,
			b.Date.Format("2006-01-02"),
			deref(b.TimeSlot),
			string(b.Status),
			deref(b.Notes),
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(exportSheet, cell, v)
		}
	}

	_ = f.SetColWidth(exportSheet, "B", "C", 30)
	_ = f.SetColWidth(exportSheet, "D", "I", 16)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func gymField(b View, get func(*GymRef) string) string {
	if b.Gym == nil {
		return ""
	}
	return get(b.Gym)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
