package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/frameloss/easychart"
	"github.com/xuri/excelize/v2"
)

var errNoData = errors.New("no numeric rows")

// column is one Y column of a data file plotted against the first column.
type column struct {
	name   string
	points []easychart.Point
}

// readColumns loads a CSV or XLSX table. The first column holds X, every
// other column becomes a series. A leading non-numeric row names the series.
func readColumns(path, sheet string) ([]column, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%s: unsupported data file type", path)
	}
	if err != nil {
		return nil, err
	}
	cols, err := toColumns(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cols, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	return f.GetRows(sheet)
}

func toColumns(rows [][]string) ([]column, error) {
	var cols []column
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			if i == 0 {
				for _, name := range row[1:] {
					cols = append(cols, column{name: strings.TrimSpace(name)})
				}
			}
			continue
		}
		for j, cell := range row[1:] {
			for len(cols) <= j {
				cols = append(cols, column{name: fmt.Sprintf("series %d", len(cols)+1)})
			}
			y, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue
			}
			cols[j].points = append(cols[j].points, easychart.Pt(x, y))
		}
	}
	out := cols[:0]
	for _, c := range cols {
		if len(c.points) > 0 {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, errNoData
	}
	return out, nil
}
