package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// payslipLines lays out a payslip as plain text lines. Amounts use "INR"
// because the built-in Helvetica font has no rupee glyph.
func payslipLines(p Payslip) []string {
	money := func(d decimal.Decimal) string {
		return "INR " + d.StringFixed(2)
	}

	period := "-"
	if p.PayRun != nil {
		period = fmt.Sprintf("%s %d", p.PayRun.Period(), p.PayRun.PeriodYear)
	}

	lines := []string{
		"Payslip",
		"",
		"Employee: " + p.EmployeeName,
		"Employee ID: " + p.EmployeeID.String(),
		"Period: " + period,
		fmt.Sprintf("Payable Days: %s (Worked: %s, Leave: %s)", p.PayableDays, p.TotalWorkedDays, p.TotalLeaves),
		"",
		"Earnings",
	}
	for _, c := range p.Components {
		if !c.IsDeduction {
			lines = append(lines, fmt.Sprintf("  %s: %s", c.ComponentName, money(c.Amount)))
		}
	}
	lines = append(lines, "", "Deductions")
	for _, c := range p.Components {
		if c.IsDeduction {
			lines = append(lines, fmt.Sprintf("  %s: %s", c.ComponentName, money(c.Amount)))
		}
	}

	lines = append(lines,
		"",
		"Basic Wage: "+money(p.BasicWage),
		"Gross Wage: "+money(p.GrossWage),
		"Net Wage: "+money(p.NetWage),
	)
	if p.EmployerCost.Valid {
		lines = append(lines, "Employer Cost: "+money(p.EmployerCost.Decimal))
	}
	if !p.CreatedAt.IsZero() {
		lines = append(lines, "", "Generated: "+p.CreatedAt.UTC().Format(time.RFC1123))
	}
	return lines
}

const (
	pdfFontSize   = 12
	pdfLeading    = 16
	pdfMarginLeft = 50
	pdfFirstLineY = 800
)

var pdfEscaper = strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)

// buildSimplePayslipPDF writes a one-page A4 PDF: Helvetica 12pt with 16pt
// leading (the "16 TL" operator), first line at 50,800, one text line per
// payslipLines entry. Long payslips run off the page.
func buildSimplePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var text bytes.Buffer
	fmt.Fprintf(&text, "BT\n/F1 %d Tf\n%d TL\n%d %d Td\n", pdfFontSize, pdfLeading, pdfMarginLeft, pdfFirstLineY)
	for i, line := range lines {
		op := "T* "
		if i == 0 {
			op = ""
		}
		fmt.Fprintf(&text, "%s(%s) Tj\n", op, pdfEscaper.Replace(line))
	}
	text.WriteString("ET")

	objects := [][]byte{
		[]byte("<< /Type /Catalog /Pages 2 0 R >>"),
		[]byte("<< /Type /Pages /Kids [3 0 R] /Count 1 >>"),
		[]byte("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>"),
		[]byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"),
		fmt.Appendf(nil, "<< /Length %d >>\nstream\n%s\nendstream", text.Len(), text.Bytes()),
	}

	var doc bytes.Buffer
	doc.WriteString("%PDF-1.4\n")
	xref := make([]int, len(objects))
	for n, body := range objects {
		xref[n] = doc.Len()
		fmt.Fprintf(&doc, "%d 0 obj\n%s\nendobj\n", n+1, body)
	}

	start := doc.Len()
	fmt.Fprintf(&doc, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range xref {
		fmt.Fprintf(&doc, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&doc, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, start)

	return doc.Bytes(), nil
}
