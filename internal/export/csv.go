package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

func encodeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{formatTimestamp(r.Timestamp), r.Asset, r.UnitPrice.String(), r.USDAmount.String()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func decodeCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	rows := make([]Row, 0)
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		row, err := parseRecord(line, record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
