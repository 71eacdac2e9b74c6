package storage

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// XLSXStore writes records as an Excel workbook with one "Results" sheet.
type XLSXStore struct {
	dir   string
	stamp string
}

// NewXLSXStore creates an Excel store.
func NewXLSXStore(dir, stamp string) *XLSXStore {
	return &XLSXStore{dir: dir, stamp: stamp}
}

// Name identifies the format.
func (s *XLSXStore) Name() string { return "xlsx" }

// Write persists the records and returns the path written.
func (s *XLSXStore) Write(records []Record) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("results_%s.xlsx", s.stamp))

	const sheet = "Results"

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", err
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", err
	}

	for i, record := range records {
		row := record.row()
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", err
	}

	return path, nil
}
