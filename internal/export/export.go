// Package export serializes trading history to downloadable files and reads them back.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cryptowise/internal/domain"
)

// Format is a download file format
type Format string

// Supported formats
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Column names, in file order
const (
	ColumnTimestamp = "timestamp"
	ColumnCoin      = "coin"
	ColumnPrice     = "price"
	ColumnAmount    = "amount"
)

// TimestampLayout is how timestamps are written in every format
const TimestampLayout = time.RFC3339Nano

var columns = []string{ColumnTimestamp, ColumnCoin, ColumnPrice, ColumnAmount}

// ErrUnsupportedFormat is returned for a format name that is not csv, json or xlsx
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatXLSX}
}

// ParseFormat reads a format name. Matching ignores case, "excel" means
// xlsx and an empty name means csv.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ContentType returns the MIME type of f
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// FileName returns the download name of a history file in f
func (f Format) FileName() string {
	return "trading_history." + string(f)
}

// Row is one exported trade
type Row struct {
	Timestamp time.Time
	Asset     string
	UnitPrice decimal.Decimal
	USDAmount decimal.Decimal
}

// Equal reports whether r and o describe the same trade
func (r Row) Equal(o Row) bool {
	return r.Timestamp.Equal(o.Timestamp) &&
		r.Asset == o.Asset &&
		r.UnitPrice.Equal(o.UnitPrice) &&
		r.USDAmount.Equal(o.USDAmount)
}

// RowsFromTrades converts a history to rows, keeping its order
func RowsFromTrades(trades []domain.Trade) []Row {
	rows := make([]Row, len(trades))
	for i, t := range trades {
		rows[i] = Row{
			Timestamp: t.CreatedAt.UTC(),
			Asset:     t.Asset,
			UnitPrice: t.UnitPrice,
			USDAmount: t.USDAmount,
		}
	}
	return rows
}

// Encode writes rows to w in format
func Encode(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, rows)
	case FormatJSON:
		return encodeJSON(w, rows)
	case FormatXLSX:
		return encodeXLSX(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode reads rows written by Encode
func Decode(r io.Reader, format Format) ([]Row, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatXLSX:
		return decodeXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// parseRecord turns the four column values of one line back into a Row
func parseRecord(line int, record []string) (Row, error) {
	if len(record) != len(columns) {
		return Row{}, fmt.Errorf("row %d: want %d columns, got %d", line, len(columns), len(record))
	}

	ts, err := time.Parse(TimestampLayout, record[0])
	if err != nil {
		return Row{}, fmt.Errorf("row %d: bad timestamp: %w", line, err)
	}
	price, err := decimal.NewFromString(record[2])
	if err != nil {
		return Row{}, fmt.Errorf("row %d: bad price: %w", line, err)
	}
	amount, err := decimal.NewFromString(record[3])
	if err != nil {
		return Row{}, fmt.Errorf("row %d: bad amount: %w", line, err)
	}

	return Row{Timestamp: ts.UTC(), Asset: record[1], UnitPrice: price, USDAmount: amount}, nil
}

func checkHeader(header []string) error {
	if len(header) != len(columns) {
		return fmt.Errorf("unexpected header %v", header)
	}
	for i, name := range columns {
		if strings.TrimSpace(header[i]) != name {
			return fmt.Errorf("unexpected header %v", header)
		}
	}
	return nil
}
