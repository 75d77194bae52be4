package fileio

import (
	"bytes"
	"strconv"
	"strings"

	excelize "github.com/xuri/excelize/v2"
)

// WriteXLSXGrid serializes a cell grid to an .xlsx workbook with a single
// sheet. Cells that parse as numbers are written as numbers so rate columns
// stay numeric in the output.
func WriteXLSXGrid(grid [][]string, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if def := f.GetSheetName(0); def != sheet {
		_ = f.DeleteSheet(def)
	}

	for r, row := range grid {
		vals := make([]interface{}, len(row))
		for c, cell := range row {
			vals[c] = cellValue(cell)
		}
		addr, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, addr, &vals); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellValue(s string) interface{} {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(t, 64); err == nil {
		return n
	}
	return s
}
