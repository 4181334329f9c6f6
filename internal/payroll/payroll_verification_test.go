package payroll_test

import (
	"bytes"
	"testing"

	"go-payroll/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func scenarioComponents() []payroll.PayslipComponent {
	return []payroll.PayslipComponent{
		{ComponentName: "Basic", Amount: decimal.RequireFromString("27272.73")},
		{ComponentName: "HRA", Amount: decimal.RequireFromString("5000")},
		{ComponentName: "PF", Amount: decimal.RequireFromString("3272.73"), IsDeduction: true},
	}
}

func scenarioSample() payroll.PayslipSample {
	return payroll.PayslipSample{
		ID:              "p-1",
		EmployeeName:    "Asha Rao",
		BasicWage:       decimal.RequireFromString("27272.73"),
		GrossWage:       decimal.RequireFromString("32272.73"),
		NetWage:         decimal.RequireFromString("29000.00"),
		EmployerCost:    decimal.NewNullDecimal(decimal.RequireFromString("27272.73")),
		TotalWorkedDays: decimal.NewFromInt(18),
		TotalLeaves:     decimal.NewFromInt(2),
		PayableDays:     decimal.NewFromInt(20),
	}
}

func TestVerifyPayslip(t *testing.T) {
	t.Run("consistent payslip passes every check", func(t *testing.T) {
		v := payroll.VerifyPayslip(scenarioSample(), scenarioComponents())

		assert.True(t, v.EmployerCostMatches)
		assert.True(t, v.GrossMatches)
		assert.True(t, v.NetMatches)
		assert.Equal(t, "32272.73", v.TotalEarnings.StringFixed(2))
		assert.Equal(t, "3272.73", v.TotalDeductions.StringFixed(2))
		assert.Equal(t, "29000.00", v.ExpectedNet.StringFixed(2))
	})

	t.Run("difference below a cent is tolerated", func(t *testing.T) {
		sample := scenarioSample()
		sample.GrossWage = decimal.RequireFromString("32272.735")

		v := payroll.VerifyPayslip(sample, scenarioComponents())

		assert.True(t, v.GrossMatches)
	})

	t.Run("difference of a cent fails", func(t *testing.T) {
		sample := scenarioSample()
		sample.NetWage = decimal.RequireFromString("29000.01")

		v := payroll.VerifyPayslip(sample, scenarioComponents())

		assert.False(t, v.NetMatches)
		assert.False(t, v.Passed())
	})

	t.Run("null employer cost does not match", func(t *testing.T) {
		sample := scenarioSample()
		sample.EmployerCost = decimal.NullDecimal{}

		v := payroll.VerifyPayslip(sample, scenarioComponents())

		assert.False(t, v.EmployerCostMatches)
	})

	t.Run("employer cost compared at two decimals", func(t *testing.T) {
		sample := scenarioSample()
		sample.EmployerCost = decimal.NewNullDecimal(decimal.RequireFromString("27272.7300"))

		v := payroll.VerifyPayslip(sample, scenarioComponents())

		assert.True(t, v.EmployerCostMatches)
	})
}

func TestRenderReport(t *testing.T) {
	report := payroll.VerificationReport{
		Payslips: []payroll.PayslipVerification{payroll.VerifyPayslip(scenarioSample(), scenarioComponents())},
	}

	var buf bytes.Buffer
	assert.NoError(t, payroll.RenderReport(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "Employee: Asha Rao")
	assert.Contains(t, out, "Payable Days: 20 (Worked: 18, Leave: 2)")
	assert.Contains(t, out, "Basic Wage:    ₹27,272.73")
	assert.Contains(t, out, "Net Wage:      ₹29,000")
	assert.Contains(t, out, "    - PF: ₹3,272.73")
	assert.Contains(t, out, "Employer Cost = Basic Wage? YES")
	assert.NotContains(t, out, "Match? NO")
	assert.Contains(t, out, "Formula Summary:")
}
