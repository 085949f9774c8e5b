package orders

import (
	"fmt"
	"hub-allocation-service/internal/domain"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const deadlineLayout = "2006-01-02"

// ReadXLSX imports orders from a spreadsheet whose first row is a header
// naming the columns id, destination, weight_kg and optionally deadline and
// note, in any order. An empty sheet name selects the first sheet. Rows
// without a deadline get defaultDeadline. Blank rows are skipped.
func ReadXLSX(path, sheet string, defaultDeadline time.Time) ([]domain.Order, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders xlsx: open %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read orders xlsx: sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read orders xlsx: sheet %q has no header row", sheet)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "destination", "weight_kg"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("read orders xlsx: missing column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]domain.Order, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		id := cell(row, "id")
		if id == "" && cell(row, "destination") == "" {
			continue
		}
		if id == "" {
			return nil, fmt.Errorf("read orders xlsx: row %d: empty id", line)
		}

		weight, err := strconv.ParseFloat(cell(row, "weight_kg"), 64)
		if err != nil {
			return nil, fmt.Errorf("read orders xlsx: row %d: %w: %q", line, ErrInvalidWeight, cell(row, "weight_kg"))
		}

		deadline := defaultDeadline
		if v := cell(row, "deadline"); v != "" {
			deadline, err = time.Parse(deadlineLayout, v)
			if err != nil {
				return nil, fmt.Errorf("read orders xlsx: row %d: parse deadline: %w", line, err)
			}
		}

		out = append(out, domain.Order{
			ID:          id,
			Destination: cell(row, "destination"),
			Deadline:    deadline,
			WeightKg:    weight,
			Note:        cell(row, "note"),
		})
	}

	return out, nil
}
