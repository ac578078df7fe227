package taxtable

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type InssSlice struct {
	MinValue       decimal.Decimal  `json:"minValue"`
	MaxValue       *decimal.Decimal `json:"maxValue"`
	Base           decimal.Decimal  `json:"base"`
	EmployeeRate   decimal.Decimal  `json:"employeeRate"`
	EmployerRate   decimal.Decimal  `json:"employerRate"`
	EmployeeAmount decimal.Decimal  `json:"employeeAmount"`
	EmployerAmount decimal.Decimal  `json:"employerAmount"`
}

type InssResult struct {
	EmployeeContribution decimal.Decimal `json:"employeeContribution"`
	EmployerContribution decimal.Decimal `json:"employerContribution"`
	Breakdown            []InssSlice     `json:"breakdown"`
}

type IrrfResult struct {
	Base           decimal.Decimal `json:"base"`
	Tax            decimal.Decimal `json:"tax"`
	DependentCount int             `json:"dependentCount"`
	Bracket        *Bracket        `json:"bracket,omitempty"`
}

type FgtsResult struct {
	Category          string          `json:"category"`
	MonthlyRate       decimal.Decimal `json:"monthlyRate"`
	MonthlyAmount     decimal.Decimal `json:"monthlyAmount"`
	TerminationAmount decimal.Decimal `json:"terminationAmount"`
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func sortedBrackets(in []Bracket) []Bracket {
	out := make([]Bracket, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinValue.LessThan(out[j].MinValue)
	})
	return out
}

// CalculateInss applies each bracket's rate to the slice of salary falling
// inside it. Slice amounts are rounded before summing.
func CalculateInss(salary decimal.Decimal, table *TaxTable) InssResult {
	res := InssResult{EmployeeContribution: decimal.Zero, EmployerContribution: decimal.Zero}
	if table == nil || !salary.IsPositive() {
		return res
	}

	for _, b := range sortedBrackets(table.Brackets) {
		if salary.LessThanOrEqual(b.MinValue) {
			break
		}

		upper := salary
		if b.MaxValue != nil && b.MaxValue.LessThan(salary) {
			upper = *b.MaxValue
		}
		base := upper.Sub(b.MinValue)
		if base.IsPositive() {
			employeeRate := b.employeeRate()
			slice := InssSlice{
				MinValue:       b.MinValue,
				MaxValue:       b.MaxValue,
				Base:           base,
				EmployeeRate:   employeeRate,
				EmployerRate:   b.EmployerRate,
				EmployeeAmount: round2(base.Mul(employeeRate).Div(hundred)),
				EmployerAmount: round2(base.Mul(b.EmployerRate).Div(hundred)),
			}
			res.EmployeeContribution = res.EmployeeContribution.Add(slice.EmployeeAmount)
			res.EmployerContribution = res.EmployerContribution.Add(slice.EmployerAmount)
			res.Breakdown = append(res.Breakdown, slice)
		}

		if b.MaxValue != nil && salary.LessThanOrEqual(*b.MaxValue) {
			break
		}
	}
	return res
}

// CalculateIrrf uses the simplified formula of the single bracket containing
// the base: base * rate / 100 - deduction, floored at zero.
func CalculateIrrf(taxableIncome decimal.Decimal, dependentCount int, table *TaxTable) IrrfResult {
	if dependentCount < 0 {
		dependentCount = 0
	}
	res := IrrfResult{Base: decimal.Zero, Tax: decimal.Zero, DependentCount: dependentCount}
	if table == nil {
		return res
	}

	base := taxableIncome.Sub(table.DependentDeduction.Mul(decimal.NewFromInt(int64(dependentCount))))
	if !base.IsPositive() {
		return res
	}
	res.Base = base

	for _, b := range sortedBrackets(table.Brackets) {
		if !b.contains(base) {
			continue
		}
		bracket := b
		res.Bracket = &bracket
		if b.Rate.IsZero() {
			return res
		}
		tax := round2(base.Mul(b.Rate).Div(hundred).Sub(b.Deduction))
		if tax.IsPositive() {
			res.Tax = tax
		}
		return res
	}
	return res
}

// CalculateFgts falls back to the STANDARD rate when the category has none.
func CalculateFgts(salary decimal.Decimal, category string, table *TaxTable) FgtsResult {
	category = NormalizeFgtsCategory(category)
	res := FgtsResult{
		Category:          category,
		MonthlyRate:       decimal.Zero,
		MonthlyAmount:     decimal.Zero,
		TerminationAmount: decimal.Zero,
	}
	if table == nil || !salary.IsPositive() {
		return res
	}

	rate, ok := findFgtsRate(table.FgtsRates, category)
	if !ok {
		rate, ok = findFgtsRate(table.FgtsRates, CategoryStandard)
		if !ok {
			return res
		}
	}

	res.Category = NormalizeFgtsCategory(rate.Category)
	res.MonthlyRate = rate.MonthlyRate
	res.MonthlyAmount = round2(salary.Mul(rate.MonthlyRate).Div(hundred))
	res.TerminationAmount = round2(salary.Mul(rate.TerminationRate).Div(hundred))
	return res
}

func findFgtsRate(rates []FgtsRate, category string) (FgtsRate, bool) {
	for _, r := range rates {
		if NormalizeFgtsCategory(r.Category) == category {
			return r, true
		}
	}
	return FgtsRate{}, false
}
