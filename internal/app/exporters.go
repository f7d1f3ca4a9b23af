package app

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/crypto/blake2b"
)

// Record is one line of a written CSV file
type Record struct {
	Date   string `csv:"holiday_date"`
	Name   string `csv:"holiday_name"`
	Period string `csv:"holiday_period"`
}

const csvFields = 3

// SanitizeName replaces commas so the name stays in one CSV column
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, ",", " ")
}

// RenderCSV renders rows in output order. Lines are joined with "\n"
// and the last row has no trailing newline.
func RenderCSV(rows []Row) []byte {
	var buf bytes.Buffer

	// CSV header
	buf.WriteString(CSVHeader)
	buf.WriteByte('\n')

	// CSV rows
	for i, row := range rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%s,%s,%s", row.Date.Format(OutputDateLayout), SanitizeName(row.Name), row.Period)
	}
	return buf.Bytes()
}

// ReadCSV parses a file produced by RenderCSV.
// Fields are split on commas only; quotes are literal text.
func ReadCSV(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	var records []Record
	if err := gocsv.UnmarshalCSV(newPlainReader(data), &records); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}

// plainReader reads the unquoted format RenderCSV writes. encoding/csv
// treats a name starting with '"' as a quoted field, so it cannot be used.
type plainReader struct {
	lines []string
	next  int
}

func newPlainReader(data []byte) *plainReader {
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &plainReader{lines: lines}
}

func (p *plainReader) Read() ([]string, error) {
	if p.next >= len(p.lines) {
		return nil, io.EOF
	}
	p.next++
	fields := strings.Split(p.lines[p.next-1], ",")
	if len(fields) != csvFields {
		return nil, fmt.Errorf("line %d: expected %d fields, got %d", p.next, csvFields, len(fields))
	}
	return fields, nil
}

func (p *plainReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := p.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Digest returns the hex BLAKE2b-256 sum of data
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
