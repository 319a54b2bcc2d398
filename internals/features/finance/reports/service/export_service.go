// file: internals/features/finance/reports/service/export_service.go
package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportOutstandingXLSX: tulis laporan tunggakan ke workbook xlsx.
func ExportOutstandingXLSX(rows []OutstandingRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Outstanding"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Admission No", "Student", "Fee Type", "Academic Year", "Term", "Status", "Due Date", "Remaining"}
	for i, hcell := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, hcell); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		row := i + 2
		due := ""
		if r.DueDate != nil {
			due = r.DueDate.Format("2006-01-02")
		}
		values := []interface{}{r.AdmissionNo, r.StudentName, r.FeeTypeName, r.AcademicYear, r.Term, r.Status, due, r.Remaining}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ExportCollectionXLSX: tulis rekap penerimaan ke workbook xlsx.
func ExportCollectionXLSX(rows []CollectionRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Collections"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Day", "Transactions", "Total", "Methods"}
	for i, hcell := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, hcell); err != nil {
			return nil, err
		}
	}

	var grandTotal int64
	for i, r := range rows {
		row := i + 2
		parts := make([]string, 0, len(r.Methods))
		for _, m := range r.Methods {
			parts = append(parts, fmt.Sprintf("%s=%d", m.Method, m.TotalAmount))
		}
		values := []interface{}{r.Day.Format("2006-01-02"), r.TxCount, r.TotalAmount, strings.Join(parts, "; ")}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		grandTotal += r.TotalAmount
	}

	totalRow := len(rows) + 2
	cell, _ := excelize.CoordinatesToCellName(2, totalRow)
	if err := f.SetCellValue(sheet, cell, "TOTAL"); err != nil {
		return nil, err
	}
	cell, _ = excelize.CoordinatesToCellName(3, totalRow)
	if err := f.SetCellValue(sheet, cell, grandTotal); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ExportFilename: nama file unduhan, mis. outstanding-2026-09-01.xlsx
func ExportFilename(kind, date string) string {
	return fmt.Sprintf("%s-%s.xlsx", kind, date)
}
