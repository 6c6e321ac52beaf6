package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const (
	payrollSheet = "Payroll"
	XLSXMime     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var payrollHeader = []string{"ID", "Employee ID", "Employee", "Period", "Status", "Basic Salary", "Deductions", "Bonuses", "Net Salary", "Processed At"}

// PayrollWorkbook writes records as a single sheet workbook. Money columns
// hold dollar values with a currency number format.
func PayrollWorkbook(w io.Writer, records []payroll.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payrollSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	currencyFmt := "$#,##0.00"
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFmt})
	if err != nil {
		return err
	}

	for i, h := range payrollHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(payrollSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(payrollSheet, "A1", "J1", bold); err != nil {
		return err
	}

	for i, r := range records {
		row := i + 2
		values := []interface{}{
			r.ID,
			r.EmployeeID,
			r.EmployeeName,
			r.Period,
			string(r.Status),
			dollars(r.BasicSalary),
			dollars(r.Deductions),
			dollars(r.Bonuses),
			dollars(r.NetSalary),
			r.ProcessedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(payrollSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if len(records) > 0 {
		last := len(records) + 1
		if err := f.SetCellStyle(payrollSheet, "F2", fmt.Sprintf("I%d", last), currency); err != nil {
			return err
		}
		totalRow := last + 1
		if err := f.SetCellValue(payrollSheet, fmt.Sprintf("E%d", totalRow), "Total"); err != nil {
			return err
		}
		if err := f.SetCellFormula(payrollSheet, fmt.Sprintf("I%d", totalRow), fmt.Sprintf("SUM(I2:I%d)", last)); err != nil {
			return err
		}
		if err := f.SetCellStyle(payrollSheet, fmt.Sprintf("I%d", totalRow), fmt.Sprintf("I%d", totalRow), currency); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(payrollSheet, "A", "J", 18); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func dollars(cents int64) float64 {
	return float64(cents) / 100
}
