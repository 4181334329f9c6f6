package payroll

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultVerificationLimit = 3

var tolerance = decimal.New(1, -2)

type VerifiedComponent struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	IsDeduction bool            `json:"is_deduction"`
}

type PayslipVerification struct {
	PayslipID       string              `json:"payslip_id"`
	EmployeeName    string              `json:"employee_name"`
	TotalWorkedDays decimal.Decimal     `json:"total_worked_days"`
	TotalLeaves     decimal.Decimal     `json:"total_leaves"`
	PayableDays     decimal.Decimal     `json:"payable_days"`
	BasicWage       decimal.Decimal     `json:"basic_wage"`
	GrossWage       decimal.Decimal     `json:"gross_wage"`
	NetWage         decimal.Decimal     `json:"net_wage"`
	EmployerCost    decimal.NullDecimal `json:"employer_cost"`
	Components      []VerifiedComponent `json:"components"`
	TotalEarnings   decimal.Decimal     `json:"total_earnings"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	ExpectedNet     decimal.Decimal     `json:"expected_net"`

	EmployerCostMatches bool `json:"employer_cost_matches"`
	GrossMatches        bool `json:"gross_matches"`
	NetMatches          bool `json:"net_matches"`
}

func (v PayslipVerification) Passed() bool {
	return v.EmployerCostMatches && v.GrossMatches && v.NetMatches
}

type VerificationReport struct {
	Payslips []PayslipVerification `json:"payslips"`
}

func (r VerificationReport) Failures() int {
	n := 0
	for _, p := range r.Payslips {
		if !p.Passed() {
			n++
		}
	}
	return n
}

// VerifyPayslip checks one stored payslip against its own component lines:
// employer_cost equals basic_wage at two decimals, the earnings add up to
// gross_wage and earnings minus deductions give net_wage, both within 0.01.
// A NULL employer_cost counts as zero.
func VerifyPayslip(sample PayslipSample, components []PayslipComponent) PayslipVerification {
	v := PayslipVerification{
		PayslipID:       sample.ID,
		EmployeeName:    sample.EmployeeName,
		TotalWorkedDays: sample.TotalWorkedDays,
		TotalLeaves:     sample.TotalLeaves,
		PayableDays:     sample.PayableDays,
		BasicWage:       sample.BasicWage,
		GrossWage:       sample.GrossWage,
		NetWage:         sample.NetWage,
		EmployerCost:    sample.EmployerCost,
		Components:      make([]VerifiedComponent, 0, len(components)),
		TotalEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
	}

	for _, c := range components {
		v.Components = append(v.Components, VerifiedComponent{
			Name:        c.ComponentName,
			Amount:      c.Amount,
			IsDeduction: c.IsDeduction,
		})
		if c.IsDeduction {
			v.TotalDeductions = v.TotalDeductions.Add(c.Amount)
		} else {
			v.TotalEarnings = v.TotalEarnings.Add(c.Amount)
		}
	}
	v.ExpectedNet = v.TotalEarnings.Sub(v.TotalDeductions)

	employerCost := decimal.Zero
	if sample.EmployerCost.Valid {
		employerCost = sample.EmployerCost.Decimal
	}
	v.EmployerCostMatches = employerCost.StringFixed(2) == sample.BasicWage.StringFixed(2)
	v.GrossMatches = withinTolerance(v.TotalEarnings, sample.GrossWage)
	v.NetMatches = withinTolerance(v.ExpectedNet, sample.NetWage)

	return v
}

func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}

// RenderReport writes the human-readable audit, one block per payslip,
// followed by the formula summary.
func RenderReport(w io.Writer, report VerificationReport) error {
	p := message.NewPrinter(language.English)
	money := func(d decimal.Decimal) string {
		return p.Sprintf("₹%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
	}
	yesNo := func(ok bool) string {
		if ok {
			return "YES"
		}
		return "NO"
	}

	var b strings.Builder
	b.WriteString("Verifying payslip calculation formulas...\n\n")
	b.WriteString("Sample Payslips:\n================\n\n")

	for _, v := range report.Payslips {
		employerCost := decimal.Zero
		if v.EmployerCost.Valid {
			employerCost = v.EmployerCost.Decimal
		}

		fmt.Fprintf(&b, "Employee: %s\n", v.EmployeeName)
		fmt.Fprintf(&b, "  Payable Days: %s (Worked: %s, Leave: %s)\n", v.PayableDays, v.TotalWorkedDays, v.TotalLeaves)
		fmt.Fprintf(&b, "  Basic Wage:    %s\n", money(v.BasicWage))
		fmt.Fprintf(&b, "  Gross Wage:    %s\n", money(v.GrossWage))
		fmt.Fprintf(&b, "  Net Wage:      %s\n", money(v.NetWage))
		fmt.Fprintf(&b, "  Employer Cost: %s\n", money(employerCost))
		fmt.Fprintf(&b, "  Employer Cost = Basic Wage? %s\n\n", yesNo(v.EmployerCostMatches))

		b.WriteString("  Components:\n")
		for _, c := range v.Components {
			sign := "+"
			if c.IsDeduction {
				sign = "-"
			}
			fmt.Fprintf(&b, "    %s %s: %s\n", sign, c.Name, money(c.Amount))
		}

		b.WriteString("\n  Verification:\n")
		fmt.Fprintf(&b, "    Total Earnings: %s\n", money(v.TotalEarnings))
		fmt.Fprintf(&b, "    Gross Wage (stored): %s\n", money(v.GrossWage))
		fmt.Fprintf(&b, "    Match? %s\n\n", yesNo(v.GrossMatches))
		fmt.Fprintf(&b, "    Total Deductions: %s\n", money(v.TotalDeductions))
		fmt.Fprintf(&b, "    Net Wage (stored): %s\n", money(v.NetWage))
		fmt.Fprintf(&b, "    Expected Net: %s\n", money(v.ExpectedNet))
		fmt.Fprintf(&b, "    Match? %s\n", yesNo(v.NetMatches))
		fmt.Fprintf(&b, "\n%s\n\n", strings.Repeat("=", 60))
	}

	b.WriteString("Formula Summary:\n==================\n")
	b.WriteString("Basic Wage = Monthly Wage x (Payable Days / Expected Working Days)\n")
	b.WriteString("Gross Wage = Basic Wage + All Allowances\n")
	b.WriteString("Net Wage = Gross Wage - All Deductions\n")
	b.WriteString("Employer Cost = Basic Wage (Monthly Wage after proration)\n")

	_, err := io.WriteString(w, b.String())
	return err
}
