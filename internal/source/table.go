package source

import (
	"fmt"
	"strconv"
	"strings"

	"arkmotors/internal/normalize"
	"arkmotors/pkg/models"
)

// buildTable turns sheet rows into a table whose header is the row at
// headerRow. Columns with a blank header are dropped, repeated header names
// get the first free ".N" suffix, and rows with no content are skipped.
func buildTable(id models.TableID, rows [][]string, headerRow int) (models.Table, error) {
	if headerRow < 0 || headerRow >= len(rows) {
		return models.Table{ID: id}, fmt.Errorf("%w: header row %d, sheet has %d rows", ErrHeaderOutOfRange, headerRow+1, len(rows))
	}

	var (
		keep    []int
		columns []string
		seen    = make(map[string]int)
	)
	for i, h := range rows[headerRow] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		name := h
		if n, dup := seen[h]; dup {
			for {
				name = h + "." + strconv.Itoa(n)
				n++
				if _, used := seen[name]; !used {
					break
				}
			}
			seen[h] = n
		}
		seen[name] = 1
		keep = append(keep, i)
		columns = append(columns, name)
	}

	t := models.Table{ID: id, Columns: columns}
	for _, raw := range rows[headerRow+1:] {
		row := make([]string, len(keep))
		blank := true
		for j, src := range keep {
			if src < len(raw) {
				row[j] = strings.TrimSpace(raw[src])
			}
			if row[j] != "" {
				blank = false
			}
		}
		if !blank {
			t.Rows = append(t.Rows, row)
		}
	}
	return t, nil
}

// applySchema performs the per-source renames and defaults, then period
// normalization and date coercion.
func applySchema(t models.Table, s Schema) models.Table {
	if len(s.Renames) > 0 {
		t = t.Renamed(s.Renames)
	}

	for _, d := range s.Defaults {
		if !t.Has(d.Column) {
			t = t.WithColumn(d.Column, repeat(d.Value, t.Len()))
		}
	}

	return coerceDates(withPeriod(t, s.PeriodFrom), s.DateColumns)
}

// withPeriod fills the canonical period column from the period source column
// or an existing period column. Rows where that is blank, or tables without
// either column, fall back to the date column named by from when there is
// one. Unparseable values keep their text, so every dated row keeps some
// period token.
func withPeriod(t models.Table, from string) models.Table {
	var raw []string
	switch {
	case t.Has(models.ColPeriodSource):
		raw = t.Column(models.ColPeriodSource)
	case t.Has(models.ColPeriod):
		raw = t.Column(models.ColPeriod)
	default:
		raw = make([]string, t.Len())
	}
	var dates []string
	if from != "" {
		dates = t.Column(from)
	}

	periods := make([]string, len(raw))
	for i, v := range raw {
		if v == "" && dates != nil {
			v = dates[i]
		}
		periods[i] = normalize.NormalizePeriod(v)
	}
	return t.WithColumn(models.ColPeriod, periods)
}

// coerceDates rewrites date columns as YYYY-MM-DD; unparseable cells become empty
func coerceDates(t models.Table, columns []string) models.Table {
	for _, col := range columns {
		values := t.Column(col)
		if values == nil {
			continue
		}
		for i, v := range values {
			if d, ok := normalize.ParseDate(v); ok {
				values[i] = d.Format("2006-01-02")
			} else {
				values[i] = ""
			}
		}
		t = t.WithColumn(col, values)
	}
	return t
}

func repeat(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}
