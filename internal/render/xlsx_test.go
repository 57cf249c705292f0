package render

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := XLSX(&buf, NewDocument("Semester", sampleSchedule()), DefaultOptions()); err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	// title, header, MONDAY + 2, TUESDAY + 1, UNKNOWN + 1
	if len(rows) != 9 {
		t.Fatalf("rows = %d, want 9: %v", len(rows), rows)
	}
	if rows[0][0] != "Semester" {
		t.Errorf("title = %q", rows[0][0])
	}
	if len(rows[1]) != 4 || rows[1][2] != "Course Name" {
		t.Errorf("header = %v", rows[1])
	}
	if rows[2][0] != "MONDAY" || rows[5][0] != "TUESDAY" || rows[7][0] != "UNKNOWN" {
		t.Errorf("day rows = %q %q %q", rows[2][0], rows[5][0], rows[7][0])
	}
	if rows[3][1] != "CSC 205" || rows[4][1] != "SOE 322" {
		t.Errorf("MONDAY codes = %q %q", rows[3][1], rows[4][1])
	}

	merged, err := f.GetMergeCells(SheetName)
	if err != nil {
		t.Fatalf("GetMergeCells() error = %v", err)
	}
	if len(merged) != 4 {
		t.Errorf("merged ranges = %d, want 4 (title + 3 days)", len(merged))
	}
}
