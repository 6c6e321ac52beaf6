package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/money"
	"github.com/jung-kurt/gofpdf"
)

const PDFMime = "application/pdf"

// Payslip renders one payroll record as an A4 PDF.
func Payslip(w io.Writer, rec payroll.Record, emp employee.Employee) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+rec.Period, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Employee: %s", rec.EmployeeName),
		fmt.Sprintf("Email: %s", emp.Email),
		fmt.Sprintf("Position: %s, %s", emp.Position, emp.Department),
		fmt.Sprintf("Period: %s", rec.Period),
		fmt.Sprintf("Status: %s", rec.Status),
	}
	for _, l := range lines {
		pdf.Cell(0, 8, l)
		pdf.Ln(7)
	}
	pdf.Ln(5)

	rows := [][2]string{
		{"Basic salary", money.Format(rec.BasicSalary)},
		{"Deductions", "-" + money.Format(rec.Deductions)},
		{"Bonuses", money.Format(rec.Bonuses)},
	}
	for _, r := range rows {
		pdf.CellFormat(80, 8, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, r[1], "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 8, "Net salary", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, money.Format(rec.NetSalary), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}
