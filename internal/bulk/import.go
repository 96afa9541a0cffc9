// Package bulk implements the delimited file contracts of the admin tool:
// the four-column import format for seeding a new food bank and the
// seven-column export of the outgoing ledger.  Import validation is
// all-or-nothing: any bad header, empty cell or malformed quantity
// rejects the whole file before a single row is applied.
package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/laurvh/food-for-you/internal/model"
)

// importHeader is the exact header row an import file must carry.
var importHeader = [4]string{"item", "category", "quantity", "units"}

// ParseImport reads a CSV import file and returns its validated rows.
// The header must match importHeader exactly; every data row must have a
// value in all four cells and a quantity that is a non-negative integer
// literal.  Row numbers in errors count the header as row 1, matching
// what a spreadsheet shows the admin.
func ParseImport(r io.Reader) ([]model.ImportItem, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, err
	}
	if len(header) != len(importHeader) {
		return nil, fmt.Errorf("incorrect headers: expected 'item', 'category', 'quantity', 'units'")
	}
	for i, want := range importHeader {
		if header[i] != want {
			return nil, fmt.Errorf("incorrect headers: expected 'item', 'category', 'quantity', 'units'")
		}
	}

	var items []model.ImportItem
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %v", row, err)
		}
		for _, cell := range record {
			if cell == "" {
				return nil, fmt.Errorf("empty values on row %d", row)
			}
		}
		qty, err := parseQuantity(record[2])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity (%s) on row %d", record[2], row)
		}
		items = append(items, model.ImportItem{
			Name:     record[0],
			Category: record[1],
			Quantity: qty,
			Units:    record[3],
		})
	}
	return items, nil
}

// parseQuantity accepts only unsigned decimal digit strings, so "-1",
// "1.5" and "1e3" all fail.
func parseQuantity(s string) (int64, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a non-negative integer")
		}
	}
	return strconv.ParseInt(s, 10, 64)
}
