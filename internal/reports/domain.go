package reports

import (
	"bytes"
	"encoding/json"
)

// AggregateRow is one grouped row from an income or expense query: a
// category label, a month number and the summed amount for that cell.
type AggregateRow struct {
	Category string
	Month    int
	Amount   float64
}

// CategoryRow is one reshaped matrix row. Cells holds one entry per month
// label in the requested range, zero-filled for months without activity.
type CategoryRow struct {
	Category string
	Months   []string
	Cells    map[string]float64
	Total    float64
}

// MarshalJSON renders the row with the month abbreviations as top-level
// keys, in range order, between the rubro and total fields.
func (r CategoryRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"rubro":`)
	category, err := json.Marshal(r.Category)
	if err != nil {
		return nil, err
	}
	buf.Write(category)
	for _, label := range r.Months {
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		cell, err := json.Marshal(r.Cells[label])
		if err != nil {
			return nil, err
		}
		buf.Write(cell)
	}
	buf.WriteString(`,"total":`)
	total, err := json.Marshal(r.Total)
	if err != nil {
		return nil, err
	}
	buf.Write(total)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the assembled income and expense matrix for one month range.
type Report struct {
	Months        []string
	Income        []CategoryRow
	Expenses      []CategoryRow
	TotalIncome   float64
	TotalExpenses float64
	NetBalance    float64
}
