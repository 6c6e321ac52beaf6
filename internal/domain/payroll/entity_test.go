package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		basic         int64
		hours         float64
		pending       bool
		wantDeduction int64
		wantBonus     int64
		wantStatus    Status
	}{
		{"no overtime", 500000, 160, false, 100000, 0, StatusProcessed},
		{"ten overtime hours", 480000, 170, false, 96000, 45000, StatusProcessed},
		{"odd cents floor", 333333, 0, true, 66666, 0, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute("emp-1", "John Doe", "2025-04", tt.basic, tt.hours, tt.pending)
			assert.Equal(t, tt.wantDeduction, r.Deductions)
			assert.Equal(t, tt.wantBonus, r.Bonuses)
			assert.Equal(t, tt.wantStatus, r.Status)
			assert.True(t, r.Balanced())
			assert.Equal(t, tt.basic-tt.wantDeduction+tt.wantBonus, r.NetSalary)
		})
	}
}

func TestInPeriod(t *testing.T) {
	assert.True(t, InPeriod("2025-04-14", "2025-04"))
	assert.False(t, InPeriod("2025-05-01", "2025-04"))
	assert.False(t, InPeriod("", "2025-04"))
}

func TestCalculateTax(t *testing.T) {
	b := CalculateTax(10_000_000, "california")
	assert.Equal(t, int64(2_200_000), b.FederalTax)
	assert.Equal(t, int64(930_000), b.StateTax)
	assert.Equal(t, int64(145_000), b.Medicare)
	assert.Equal(t, int64(620_000), b.SocialSecurity)
	assert.Equal(t, int64(3_895_000), b.TotalTax)
	assert.Equal(t, int64(6_105_000), b.NetIncome)

	high := CalculateTax(50_000_000, "Texas")
	assert.Equal(t, SocialSecurityCap, high.SocialSecurity)
	assert.Zero(t, high.StateTax)

	assert.Equal(t, int64(680), StateRate("New York"))
	assert.Equal(t, DefaultStateRate, StateRate("ohio"))
}
