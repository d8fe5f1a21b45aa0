// Package export writes record listings to spreadsheet files.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of the files WriteXLSX produces.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DateTimeLayout formats timestamps written as text.
const DateTimeLayout = "2006-01-02 15:04:05"

// Column is one spreadsheet column of a record type.
type Column[T any] struct {
	Header string
	Value  func(T) interface{}
}

// WriteXLSX writes rows to a single-sheet workbook with a bold header row.
func WriteXLSX[T any](w io.Writer, sheet string, columns []Column[T], rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}
	f.SetActiveSheet(index)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return err
		}
	}
	if len(columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, col.Value(row)); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Time renders an optional timestamp, empty when unset.
func Time(t *time.Time) interface{} {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateTimeLayout)
}

// Stamp renders a timestamp.
func Stamp(t time.Time) interface{} {
	return Time(&t)
}

// List joins a string slice with commas.
func List(items []string) interface{} {
	return strings.Join(items, ", ")
}

// Amount renders a decimal as a number cell.
func Amount(d decimal.Decimal) interface{} {
	return d.InexactFloat64()
}
