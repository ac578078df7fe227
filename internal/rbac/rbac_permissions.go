package rbac

import "github.com/google/uuid"

// PermissionCatalog lists every resource:action pair the API routes check.
var PermissionCatalog = []PermissionRow{
	{Resource: "company", Action: "read", Label: "View company profile", Category: "company"},
	{Resource: "company", Action: "update", Label: "Edit company profile", Category: "company"},
	{Resource: "company", Action: "delete", Label: "Remove company registrations", Category: "company"},

	{Resource: "cost_center", Action: "read", Label: "View cost centers", Category: "organization"},
	{Resource: "cost_center", Action: "create", Label: "Create cost centers", Category: "organization"},
	{Resource: "cost_center", Action: "update", Label: "Edit cost centers", Category: "organization"},
	{Resource: "cost_center", Action: "delete", Label: "Delete cost centers", Category: "organization"},

	{Resource: "employee", Action: "read", Label: "View employees", Category: "employee"},
	{Resource: "employee", Action: "create", Label: "Create employees", Category: "employee"},
	{Resource: "employee", Action: "update", Label: "Edit employees", Category: "employee"},
	{Resource: "employee", Action: "delete", Label: "Delete employees", Category: "employee"},
	{Resource: "salary", Action: "read", Label: "View salary history", Category: "employee"},
	{Resource: "salary", Action: "update", Label: "Change salaries", Category: "employee"},

	{Resource: "earning", Action: "read", Label: "View earnings and deductions", Category: "payroll"},
	{Resource: "earning", Action: "manage", Label: "Manage earning and deduction types", Category: "payroll"},
	{Resource: "earning", Action: "assign", Label: "Assign earnings and deductions", Category: "payroll"},
	{Resource: "payroll", Action: "read", Label: "View payrolls", Category: "payroll"},
	{Resource: "payroll", Action: "create", Label: "Create and edit payrolls", Category: "payroll"},
	{Resource: "payroll", Action: "delete", Label: "Delete draft payrolls", Category: "payroll"},
	{Resource: "payroll", Action: "calculate", Label: "Calculate payrolls", Category: "payroll"},
	{Resource: "payroll", Action: "approve", Label: "Approve payrolls", Category: "payroll"},
	{Resource: "payroll", Action: "pay", Label: "Mark payrolls as paid", Category: "payroll"},
	{Resource: "tax_table", Action: "read", Label: "View tax tables", Category: "tax"},
	{Resource: "tax_table", Action: "manage", Label: "Manage tax tables", Category: "tax"},

	{Resource: "role", Action: "read", Label: "View roles", Category: "access"},
	{Resource: "role", Action: "manage", Label: "Manage roles and permissions", Category: "access"},
}

// SeedPermissions makes sure every catalog entry exists. Labels and
// categories of existing rows are refreshed, ids are kept.
func SeedPermissions(repo Repository) error {
	rows := make([]PermissionRow, len(PermissionCatalog))
	for i, p := range PermissionCatalog {
		p.ID = uuid.NewString()
		rows[i] = p
	}
	return repo.UpsertPermissions(rows)
}
