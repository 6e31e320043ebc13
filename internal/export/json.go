package export

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonRow struct {
	Timestamp string      `json:"timestamp"`
	Coin      string      `json:"coin"`
	Price     json.Number `json:"price"`
	Amount    json.Number `json:"amount"`
}

func encodeJSON(w io.Writer, rows []Row) error {
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		out[i] = jsonRow{
			Timestamp: formatTimestamp(r.Timestamp),
			Coin:      r.Asset,
			Price:     json.Number(r.UnitPrice.String()),
			Amount:    json.Number(r.USDAmount.String()),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func decodeJSON(r io.Reader) ([]Row, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var in []jsonRow
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}

	rows := make([]Row, 0, len(in))
	for i, jr := range in {
		row, err := parseRecord(i+1, []string{jr.Timestamp, jr.Coin, jr.Price.String(), jr.Amount.String()})
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
