package export

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the history
const SheetName = "Trading History"

func encodeXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, name := range columns {
		if err := setCell(f, col+1, 1, name); err != nil {
			return err
		}
	}

	for i, r := range rows {
		line := i + 2
		if err := setCell(f, 1, line, formatTimestamp(r.Timestamp)); err != nil {
			return err
		}
		if err := setCell(f, 2, line, r.Asset); err != nil {
			return err
		}
		if err := setDecimalCell(f, 3, line, r.UnitPrice); err != nil {
			return err
		}
		if err := setDecimalCell(f, 4, line, r.USDAmount); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStr(SheetName, cell, value)
}

// setDecimalCell writes a number cell when d survives the float64 round
// trip, and a text cell otherwise so no digits are lost.
func setDecimalCell(f *excelize.File, col, row int, d decimal.Decimal) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	v, _ := d.Float64()
	if !math.IsInf(v, 0) && decimal.NewFromFloat(v).Equal(d) {
		return f.SetCellFloat(SheetName, cell, v, -1, 64)
	}
	return f.SetCellStr(SheetName, cell, d.String())
}

func decodeXLSX(r io.Reader) ([]Row, error) {
	opts := excelize.Options{RawCellValue: true}
	f, err := excelize.OpenReader(r, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	records, err := f.GetRows(sheets[0], opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("xlsx has no header")
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRecord(i+1, record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
