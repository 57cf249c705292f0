package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the timetable.
const SheetName = "Timetable"

// XLSX writes a workbook with a title row, a header row and, per day, a
// merged day row followed by its courses.
func XLSX(w io.Writer, doc *Document, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	cols := Columns(opts)
	last := colName(len(cols) - 1)
	widths := map[string]float64{"Time": 22, "Course Code": 14, "Course Name": 36, "Location": 18}
	for i, c := range cols {
		f.SetColWidth(SheetName, colName(i), colName(i), widths[c])
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dayStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})

	row := 1
	f.SetCellValue(SheetName, cell("A", row), doc.Title)
	f.MergeCell(SheetName, cell("A", row), cell(last, row))
	f.SetCellStyle(SheetName, cell("A", row), cell(last, row), titleStyle)

	row++
	for i, c := range cols {
		f.SetCellValue(SheetName, cell(colName(i), row), c)
	}
	f.SetCellStyle(SheetName, cell("A", row), cell(last, row), headerStyle)

	for _, s := range doc.Sections {
		row++
		f.SetCellValue(SheetName, cell("A", row), string(s.Day))
		f.MergeCell(SheetName, cell("A", row), cell(last, row))
		f.SetCellStyle(SheetName, cell("A", row), cell(last, row), dayStyle)

		for _, r := range s.Courses {
			row++
			for i, v := range r.Cells(opts) {
				f.SetCellValue(SheetName, cell(colName(i), row), v)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// colName converts a 0-based column index to its letter.
func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
