package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/prms-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sampleRecord = payroll.Record{
	ID:           "pay-1",
	EmployeeID:   "emp-1",
	EmployeeName: "Jane Smith",
	Period:       "2025-04",
	Amount:       429000,
	Status:       payroll.StatusProcessed,
	BasicSalary:  480000,
	Deductions:   96000,
	Bonuses:      45000,
	NetSalary:    429000,
	ProcessedAt:  time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC),
}

func TestPayrollWorkbook(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, PayrollWorkbook(buf, []payroll.Record{sampleRecord}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(payrollSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, payrollHeader, rows[0])
	assert.Equal(t, "Jane Smith", rows[1][2])

	raw, err := f.GetCellValue(payrollSheet, "I2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "4290", raw)

	formula, err := f.GetCellFormula(payrollSheet, "I3")
	require.NoError(t, err)
	assert.Equal(t, "SUM(I2:I2)", formula)
}

func TestPayrollWorkbook_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, PayrollWorkbook(buf, nil))
	assert.NotZero(t, buf.Len())
}

func TestPayslip(t *testing.T) {
	buf := new(bytes.Buffer)
	err := Payslip(buf, sampleRecord, employee.Employee{ID: "emp-1", Name: "Jane Smith", Email: "jane@company.com"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestTaxCSV(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, TaxCSV(buf, payroll.CalculateTax(10000000, "california")))

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, []string{"Gross income", "100000.00", "$100,000.00"}, records[1])
	assert.Equal(t, "State tax (california)", records[3][0])
	assert.Equal(t, "9300.00", records[3][1])
}
