package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hadleyfc/pitchplanner/pkg/core/allocator"
)

// WriteWorkbook writes the allocation outcome as an Excel workbook: one row
// per allocation on an "Allocations" sheet, plus an "Unallocated" sheet when
// any teams were left over.
func WriteWorkbook(path string, outcome *allocator.Outcome) error {
	f := excelize.NewFile()

	if err := writeAllocationsSheet(f, outcome); err != nil {
		return fmt.Errorf("writing allocations sheet: %w", err)
	}

	if len(outcome.Unallocated) > 0 {
		if err := writeUnallocatedSheet(f, outcome); err != nil {
			return fmt.Errorf("writing unallocated sheet: %w", err)
		}
	}

	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeAllocationsSheet(f *excelize.File, outcome *allocator.Outcome) error {
	sheet := "Allocations"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Time", "Team", "Pitch", "Capacity", "Preferred", "Paid"}
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if headerStyle != 0 {
		for i := range headers {
			f.SetCellStyle(sheet, cellRef(i+1, 1), cellRef(i+1, 1), headerStyle)
		}
	}

	for i, alloc := range outcome.Allocations {
		row := i + 2
		f.SetCellValue(sheet, cellRef(1, row), alloc.DisplayTime())
		f.SetCellValue(sheet, cellRef(2, row), alloc.TeamLabel)
		f.SetCellValue(sheet, cellRef(3, row), alloc.PitchLabel)
		f.SetCellValue(sheet, cellRef(4, row), int(alloc.Capacity))
		f.SetCellValue(sheet, cellRef(5, row), alloc.Preferred)
		f.SetCellValue(sheet, cellRef(6, row), alloc.Paid)
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "C", 30)

	return nil
}

func writeUnallocatedSheet(f *excelize.File, outcome *allocator.Outcome) error {
	sheet := "Unallocated"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Team")
	for i, label := range outcome.UnallocatedLabels() {
		f.SetCellValue(sheet, cellRef(1, i+2), label)
	}
	f.SetColWidth(sheet, "A", "A", 30)

	return nil
}

func cellRef(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
