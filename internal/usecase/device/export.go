package device

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const inventorySheet = "Inventory"

var inventoryHeaders = []string{"UID", "Name", "Status", "Firmware", "Created"}

// ExportInventory renders the unassigned stock as an XLSX workbook.
func (s *Service) ExportInventory(ctx context.Context) ([]byte, error) {
	devices, err := s.deviceRepo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range inventoryHeaders {
		if err := setCell(f, col+1, 1, header); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(inventorySheet, "A1", "E1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(inventorySheet, "A", "E", 20); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, d := range devices {
		row := i + 2
		values := []interface{}{d.DeviceUID, deref(d.Name), string(d.Status), deref(d.FirmwareVersion), d.CreatedAt.UTC().Format("2006-01-02 15:04")}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(inventorySheet, cell, value)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
