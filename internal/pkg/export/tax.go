package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cmlabs-hris/prms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/prms-backend-go/internal/pkg/money"
)

const CSVMime = "text/csv"

// TaxCSV writes a two column (item, amount) breakdown. Amounts are plain
// dollar values so spreadsheets can sum them; the third column is display text.
func TaxCSV(w io.Writer, b payroll.TaxBreakdown) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"item", "amount", "display"},
		row("Gross income", b.GrossIncome),
		row("Federal tax", b.FederalTax),
		row("State tax ("+b.State+")", b.StateTax),
		row("Medicare", b.Medicare),
		row("Social security", b.SocialSecurity),
		row("Total tax", b.TotalTax),
		row("Net income", b.NetIncome),
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func row(label string, cents int64) []string {
	return []string{label, strconv.FormatFloat(dollars(cents), 'f', 2, 64), money.Format(cents)}
}
