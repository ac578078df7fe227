package payroll

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/earning"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employee"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	nameBaseSalary = "Salário base"
	nameInss       = "INSS"
	nameIrrf       = "IRRF"
)

// taxTables holds the tables in force for one payroll period. A nil table
// means that tax is not computed.
type taxTables struct {
	inss *taxtable.TaxTable
	irrf *taxtable.TaxTable
	fgts *taxtable.TaxTable
}

func groupByEmployee(assignments []earning.Assignment) map[uuid.UUID][]earning.Assignment {
	out := make(map[uuid.UUID][]earning.Assignment)
	for _, a := range assignments {
		out[a.EmployeeID] = append(out[a.EmployeeID], a)
	}
	return out
}

func assignmentEntry(a earning.Assignment, amount decimal.Decimal) ItemEntry {
	return ItemEntry{
		TypeID: a.EarningTypeID.String(),
		Code:   a.TypeCode,
		Name:   a.TypeName,
		Value:  amount,
	}
}

// computeItem builds one employee's item: base salary plus earnings make the
// gross, INSS is taken on the gross, IRRF on the gross net of INSS, then the
// employee's own deductions. Employer INSS and FGTS are employer charges and
// do not reduce the net amount.
func computeItem(
	payroll *Payroll,
	emp employee.Employee,
	earnings, deductions []earning.Assignment,
	tables taxTables,
) PayrollItem {
	base := emp.Salary.Round(2)

	earningEntries := []ItemEntry{{Code: CodeBaseSalary, Name: nameBaseSalary, Value: base}}
	for _, a := range earnings {
		if amount := a.Amount(base); amount.IsPositive() {
			earningEntries = append(earningEntries, assignmentEntry(a, amount))
		}
	}
	gross := sumEntries(earningEntries)

	var deductionEntries []ItemEntry
	inss := taxtable.CalculateInss(gross, tables.inss)
	if inss.EmployeeContribution.IsPositive() {
		deductionEntries = append(deductionEntries, ItemEntry{Code: CodeInss, Name: nameInss, Value: inss.EmployeeContribution})
	}

	irrf := taxtable.CalculateIrrf(gross.Sub(inss.EmployeeContribution), 0, tables.irrf)
	if irrf.Tax.IsPositive() {
		deductionEntries = append(deductionEntries, ItemEntry{Code: CodeIrrf, Name: nameIrrf, Value: irrf.Tax})
	}

	for _, d := range deductions {
		if amount := d.Amount(base); amount.IsPositive() {
			deductionEntries = append(deductionEntries, assignmentEntry(d, amount))
		}
	}

	fgts := taxtable.CalculateFgts(gross, emp.FgtsCategory, tables.fgts)

	item := PayrollItem{
		ID:           uuid.New(),
		PayrollID:    payroll.ID,
		CompanyID:    payroll.CompanyID,
		EmployeeID:   emp.ID,
		BaseSalary:   base,
		Earnings:     datatypes.JSONSlice[ItemEntry](earningEntries),
		Deductions:   datatypes.JSONSlice[ItemEntry](orEmpty(deductionEntries)),
		EmployerInss: inss.EmployerContribution,
		FgtsAmount:   fgts.MonthlyAmount,
	}
	item.Recompute()
	return item
}

func orEmpty(entries []ItemEntry) []ItemEntry {
	if entries == nil {
		return []ItemEntry{}
	}
	return entries
}
