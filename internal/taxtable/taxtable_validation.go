package taxtable

import (
	"fmt"

	taxtableerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable/errors"

	"github.com/shopspring/decimal"
)

var (
	cent   = decimal.New(1, -2)
	maxPct = decimal.NewFromInt(100)
)

func validPct(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(maxPct)
}

func validatePeriod(year, month int) error {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return taxtableerrors.ErrInvalidPeriod
	}
	return nil
}

// ValidateBrackets requires ascending contiguous non-overlapping brackets
// where only the last one may be unbounded.
func ValidateBrackets(brackets []Bracket) error {
	fail := func(format string, args ...any) error {
		return taxtableerrors.ErrInvalidBrackets.WithCause(fmt.Errorf(format, args...))
	}

	if len(brackets) == 0 {
		return fail("at least one bracket is required")
	}
	if brackets[0].MinValue.IsNegative() {
		return fail("bracket 0: minValue must not be negative")
	}

	for i, b := range brackets {
		if b.MaxValue != nil && b.MaxValue.LessThan(b.MinValue) {
			return fail("bracket %d: maxValue is below minValue", i)
		}
		if b.MaxValue == nil && i != len(brackets)-1 {
			return fail("bracket %d: only the last bracket may be unbounded", i)
		}
		if !validPct(b.Rate) || !validPct(b.employeeRate()) || !validPct(b.EmployerRate) {
			return fail("bracket %d: rates must be between 0 and 100", i)
		}
		if b.Deduction.IsNegative() {
			return fail("bracket %d: deduction must not be negative", i)
		}

		if i == 0 {
			continue
		}
		prev := brackets[i-1]
		if b.MinValue.LessThanOrEqual(prev.MinValue) {
			return fail("bracket %d: brackets must be ascending by minValue", i)
		}
		if b.MinValue.LessThan(*prev.MaxValue) {
			return fail("bracket %d: overlaps the previous bracket", i)
		}
		if b.MinValue.GreaterThan(prev.MaxValue.Add(cent)) {
			return fail("bracket %d: leaves a gap after the previous bracket", i)
		}
	}
	return nil
}

// NormalizeFgtsRates returns a copy of rates with categories in their
// canonical form.
func NormalizeFgtsRates(rates []FgtsRate) []FgtsRate {
	if rates == nil {
		return nil
	}
	out := make([]FgtsRate, len(rates))
	for i, r := range rates {
		r.Category = NormalizeFgtsCategory(r.Category)
		out[i] = r
	}
	return out
}

// ValidateFgtsRates expects canonical categories, see NormalizeFgtsRates.
func ValidateFgtsRates(rates []FgtsRate) error {
	fail := func(format string, args ...any) error {
		return taxtableerrors.ErrInvalidFgtsRates.WithCause(fmt.Errorf(format, args...))
	}

	if len(rates) == 0 {
		return fail("at least one category rate is required")
	}
	seen := make(map[string]struct{}, len(rates))
	for i, r := range rates {
		if r.Category == "" {
			return fail("rate %d: category is required", i)
		}
		if !validFgtsCategory(r.Category) {
			return fail("rate %d: unknown category %q", i, r.Category)
		}
		if _, dup := seen[r.Category]; dup {
			return fail("rate %d: duplicate category %s", i, r.Category)
		}
		seen[r.Category] = struct{}{}
		if !validPct(r.MonthlyRate) || !validPct(r.TerminationRate) {
			return fail("rate %d: rates must be between 0 and 100", i)
		}
	}
	return nil
}

// ValidateTable checks the content a table of the given kind must carry.
func ValidateTable(kind Kind, brackets []Bracket, fgtsRates []FgtsRate, dependentDeduction decimal.Decimal) error {
	switch kind {
	case KindINSS, KindIRRF:
		if dependentDeduction.IsNegative() {
			return taxtableerrors.ErrInvalidBrackets.WithCause(fmt.Errorf("dependentDeduction must not be negative"))
		}
		return ValidateBrackets(brackets)
	case KindFGTS:
		return ValidateFgtsRates(fgtsRates)
	}
	return taxtableerrors.ErrInvalidKind
}
