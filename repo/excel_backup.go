package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"SurveyBot/model"

	"github.com/xuri/excelize/v2"
)

// ExcelBackup appends every submission to a local .xlsx workbook.
type ExcelBackup struct {
	path string
	mu   sync.Mutex
}

func NewExcelBackup(path string) *ExcelBackup {
	return &ExcelBackup{path: path}
}

func (e *ExcelBackup) Append(_ context.Context, s Submission) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, created, err := e.open()
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", e.path, err)
	}
	next := len(rows) + 1
	if len(rows) == 0 {
		if err := setRow(f, sheet, 1, model.Header); err != nil {
			return err
		}
		next = 2
	}
	if err := setRow(f, sheet, next, s.Row); err != nil {
		return err
	}

	if created {
		if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
			return fmt.Errorf("error creating backup directory: %w", err)
		}
		err = f.SaveAs(e.path)
	} else {
		err = f.Save()
	}
	if err != nil {
		return fmt.Errorf("error saving %s: %w", e.path, err)
	}
	return nil
}

func (e *ExcelBackup) open() (*excelize.File, bool, error) {
	_, err := os.Stat(e.path)
	if errors.Is(err, fs.ErrNotExist) {
		return excelize.NewFile(), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error checking %s: %w", e.path, err)
	}
	f, err := excelize.OpenFile(e.path)
	if err != nil {
		return nil, false, fmt.Errorf("error opening %s: %w", e.path, err)
	}
	return f, false, nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("error writing row %d: %w", row, err)
	}
	return nil
}
