package payroll

import (
	"math"
	"time"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/money"
)

type Status string

const (
	StatusProcessed Status = "processed"
	StatusPending   Status = "pending"
)

const (
	// DeductionRate is withheld from basic salary, in basis points.
	DeductionRate int64 = 2000
	// StandardMonthlyHours is the threshold above which approved hours count as overtime.
	StandardMonthlyHours = 160.0
	OvertimeMultiplier   = 1.5
	PeriodLayout         = "2006-01"
)

// Record is one employee's payroll row for a period. Money is in cents.
type Record struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Period       string    `json:"period"`
	Amount       int64     `json:"amount"`
	Status       Status    `json:"status"`
	BasicSalary  int64     `json:"basic_salary"`
	Deductions   int64     `json:"deductions"`
	Bonuses      int64     `json:"bonuses"`
	NetSalary    int64     `json:"net_salary"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// Balanced reports whether net and amount agree with the components.
func (r Record) Balanced() bool {
	return r.NetSalary == ComputeNetSalary(r.BasicSalary, r.Deductions, r.Bonuses) && r.Amount == r.NetSalary
}

func ComputeNetSalary(basic, deductions, bonuses int64) int64 {
	return basic - deductions + bonuses
}

// OvertimePay pays approved hours beyond StandardMonthlyHours at 1.5x the hourly rate
// implied by a monthly basic salary.
func OvertimePay(basic int64, approvedHours float64) int64 {
	extra := approvedHours - StandardMonthlyHours
	if extra <= 0 || basic <= 0 {
		return 0
	}
	hourly := float64(basic) / StandardMonthlyHours
	return int64(math.Round(extra * hourly * OvertimeMultiplier))
}

// Compute builds a balanced record for an employee and period.
func Compute(employeeID, employeeName, period string, basic int64, approvedHours float64, hasPending bool) Record {
	deductions := int64(money.Cents(basic).FloorPercent(DeductionRate))
	bonuses := OvertimePay(basic, approvedHours)
	net := ComputeNetSalary(basic, deductions, bonuses)

	status := StatusProcessed
	if hasPending {
		status = StatusPending
	}

	return Record{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Period:       period,
		Amount:       net,
		Status:       status,
		BasicSalary:  basic,
		Deductions:   deductions,
		Bonuses:      bonuses,
		NetSalary:    net,
	}
}

// InPeriod reports whether a YYYY-MM-DD date falls inside a YYYY-MM period.
func InPeriod(date, period string) bool {
	return len(date) >= len(PeriodLayout) && date[:len(PeriodLayout)] == period
}
