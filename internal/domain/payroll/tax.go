package payroll

import (
	"strings"

	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/money"
)

// Rates in basis points.
const (
	FederalRate        int64 = 2200
	MedicareRate       int64 = 145
	SocialSecurityRate int64 = 620
	DefaultStateRate   int64 = 600

	// SocialSecurityCap is the maximum social security withholding, in cents.
	SocialSecurityCap int64 = 885360
)

var stateRates = map[string]int64{
	"california": 930,
	"texas":      0,
	"new_york":   680,
}

// StateRate returns the income tax rate for a state key such as "new_york" or "New York".
func StateRate(state string) int64 {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(state)), " ", "_")
	if rate, ok := stateRates[key]; ok {
		return rate
	}
	return DefaultStateRate
}

type TaxBreakdown struct {
	GrossIncome    int64  `json:"gross_income"`
	State          string `json:"state"`
	FederalTax     int64  `json:"federal_tax"`
	StateTax       int64  `json:"state_tax"`
	Medicare       int64  `json:"medicare"`
	SocialSecurity int64  `json:"social_security"`
	TotalTax       int64  `json:"total_tax"`
	NetIncome      int64  `json:"net_income"`
}

func CalculateTax(gross int64, state string) TaxBreakdown {
	g := money.Cents(gross)
	b := TaxBreakdown{
		GrossIncome:    gross,
		State:          state,
		FederalTax:     int64(g.Percent(FederalRate)),
		StateTax:       int64(g.Percent(StateRate(state))),
		Medicare:       int64(g.Percent(MedicareRate)),
		SocialSecurity: min(int64(g.Percent(SocialSecurityRate)), SocialSecurityCap),
	}
	b.TotalTax = b.FederalTax + b.StateTax + b.Medicare + b.SocialSecurity
	b.NetIncome = gross - b.TotalTax
	return b
}
