package accounts

import "strings"

// Category is a semantic classification of an account name. Income-statement
// reports use the revenue/expense categories; balance-sheet reports use the
// asset/liability/equity categories. CategoryOther means unclassified.
type Category string

const (
	CategoryRevenue       Category = "revenue"
	CategoryContraRevenue Category = "contra-revenue"
	CategoryExpense       Category = "expense"

	CategoryAsset       Category = "asset"
	CategoryContraAsset Category = "contra-asset"
	CategoryLiability   Category = "liability"
	CategoryEquity      Category = "equity"

	CategoryOther Category = "other"
)

// Normalize canonicalizes an account name for chart lookup and aggregation:
// trimmed, lowercased, internal whitespace runs collapsed to one space, dash
// variants mapped to ASCII '-'. Normalize is idempotent.
func Normalize(name string) string {
	t := strings.ToLower(strings.TrimSpace(name))
	t = strings.Join(strings.Fields(t), " ")
	t = strings.NewReplacer("–", "-", "—", "-").Replace(t)
	return t
}

// Rule is one heuristic fallback predicate. Rules are evaluated in slice
// order; the first match wins.
type Rule struct {
	Match    func(normalized string) bool
	Category Category
}

// Classifier maps normalized account names to categories: explicit chart
// first, then built-in defaults, then ordered heuristic rules. Read-only
// after construction.
type Classifier struct {
	chart map[string]Category
	rules []Rule
}

// NewClassifier builds a classifier from built-in defaults, caller overrides
// (which win over defaults), and an ordered rule list.
func NewClassifier(defaults, overrides map[string]Category, rules []Rule) *Classifier {
	chart := make(map[string]Category, len(defaults)+len(overrides))
	for name, cat := range defaults {
		chart[Normalize(name)] = cat
	}
	for name, cat := range overrides {
		chart[Normalize(name)] = cat
	}
	return &Classifier{chart: chart, rules: rules}
}

// NewIncomeClassifier returns a classifier for income-statement categories.
// overrides may be nil.
func NewIncomeClassifier(overrides map[string]Category) *Classifier {
	return NewClassifier(DefaultIncomeChart(), overrides, IncomeRules())
}

// NewBalanceClassifier returns a classifier for balance-sheet categories.
// overrides may be nil.
func NewBalanceClassifier(overrides map[string]Category) *Classifier {
	return NewClassifier(DefaultBalanceChart(), overrides, BalanceRules())
}

// Classify resolves an account name to a category. Names not found in the
// chart fall through the rule list; names no rule matches are CategoryOther.
func (c *Classifier) Classify(name string) Category {
	n := Normalize(name)
	if cat, ok := c.chart[n]; ok {
		return cat
	}
	for _, r := range c.rules {
		if r.Match(n) {
			return r.Category
		}
	}
	return CategoryOther
}

// IncomeRules returns the heuristic fallbacks for income-statement
// classification, in precedence order.
func IncomeRules() []Rule {
	return []Rule{
		{func(n string) bool { return strings.HasSuffix(n, "expense") }, CategoryExpense},
		{func(n string) bool { return n == "cogs" || strings.Contains(n, "cost of goods sold") }, CategoryExpense},
		{func(n string) bool { return strings.HasSuffix(n, "revenue") }, CategoryRevenue},
		{func(n string) bool {
			return strings.Contains(n, "income") && !strings.Contains(n, "expense")
		}, CategoryRevenue},
		{func(n string) bool {
			if !strings.Contains(n, "sales") {
				return false
			}
			return strings.Contains(n, "return") || strings.Contains(n, "allowance") || strings.Contains(n, "discount")
		}, CategoryContraRevenue},
	}
}

// BalanceRules returns the heuristic fallbacks for balance-sheet
// classification, in precedence order.
func BalanceRules() []Rule {
	return []Rule{
		{func(n string) bool { return strings.Contains(n, "accumulated depreciation") }, CategoryContraAsset},
		{func(n string) bool {
			return strings.HasSuffix(n, "receivable") || containsAny(n, "cash", "bank", "inventory", "prepaid", "equipment", "asset")
		}, CategoryAsset},
		{func(n string) bool {
			return strings.HasSuffix(n, "payable") || containsAny(n, "liability", "loan", "debt")
		}, CategoryLiability},
		{func(n string) bool {
			return containsAny(n, "equity", "capital", "stock", "retained")
		}, CategoryEquity},
	}
}

func containsAny(n string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(n, s) {
			return true
		}
	}
	return false
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	switch Category(Normalize(s)) {
	case CategoryRevenue, CategoryContraRevenue, CategoryExpense,
		CategoryAsset, CategoryContraAsset, CategoryLiability, CategoryEquity,
		CategoryOther:
		return true
	}
	return false
}
