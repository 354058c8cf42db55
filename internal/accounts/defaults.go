package accounts

// DefaultIncomeChart returns the built-in chart for income-statement
// classification. Caller overrides take precedence over these.
func DefaultIncomeChart() map[string]Category {
	return map[string]Category{
		"service revenue":      CategoryRevenue,
		"sales revenue":        CategoryRevenue,
		"interest income":      CategoryRevenue,
		"sales returns":        CategoryContraRevenue,
		"sales allowances":     CategoryContraRevenue,
		"sales discounts":      CategoryContraRevenue,
		"rent expense":         CategoryExpense,
		"salaries expense":     CategoryExpense,
		"utilities expense":    CategoryExpense,
		"depreciation expense": CategoryExpense,
		"cogs":                 CategoryExpense,
		"cost of goods sold":   CategoryExpense,
	}
}

// DefaultBalanceChart returns the built-in chart for balance-sheet
// classification.
func DefaultBalanceChart() map[string]Category {
	return map[string]Category{
		"cash":                     CategoryAsset,
		"bank":                     CategoryAsset,
		"accounts receivable":      CategoryAsset,
		"inventory":                CategoryAsset,
		"prepaid expense":          CategoryAsset,
		"equipment":                CategoryAsset,
		"accumulated depreciation": CategoryContraAsset,
		"accounts payable":         CategoryLiability,
		"notes payable":            CategoryLiability,
		"taxes payable":            CategoryLiability,
		"wages payable":            CategoryLiability,
		"owner's equity":           CategoryEquity,
		"capital":                  CategoryEquity,
		"common stock":             CategoryEquity,
		"retained earnings":        CategoryEquity,
	}
}
