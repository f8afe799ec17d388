package service

import (
	"github.com/forgo/fete/internal/model"
)

// defaultVariableCostPerAttendee is the per-head cost applied in financial
// projections when no override is configured (venue services, materials).
const defaultVariableCostPerAttendee = 25.0

// BudgetService handles expense categorization, variance, profitability,
// and financial projections
type BudgetService struct {
	variableCostPerAttendee float64
}

// BudgetServiceConfig holds configuration for the budget service
type BudgetServiceConfig struct {
	VariableCostPerAttendee float64 // default 25
}

// NewBudgetService creates a new budget service
func NewBudgetService(cfg BudgetServiceConfig) *BudgetService {
	variable := cfg.VariableCostPerAttendee
	if variable == 0 {
		variable = defaultVariableCostPerAttendee
	}

	return &BudgetService{variableCostPerAttendee: variable}
}

// CategoryBreakdown accumulates expenses within one bucket
type CategoryBreakdown struct {
	Items map[string]float64 `json:"items"` // description -> running total
	Total float64            `json:"total"`
}

// ExpenseSummary buckets expenses into the six fixed categories
type ExpenseSummary struct {
	Categories    map[model.ExpenseCategory]CategoryBreakdown `json:"categories"`
	TotalExpenses float64                                     `json:"total_expenses"`
}

// CategorizeExpenses buckets each expense by its category name,
// case-insensitively, folding unrecognized names into miscellaneous. All
// six buckets are always present in the summary. Expenses without a
// category are skipped without error.
func (s *BudgetService) CategorizeExpenses(expenses ...model.Expense) ExpenseSummary {
	summary := ExpenseSummary{
		Categories: make(map[model.ExpenseCategory]CategoryBreakdown, len(model.ExpenseCategories)),
	}
	for _, c := range model.ExpenseCategories {
		summary.Categories[c] = CategoryBreakdown{Items: make(map[string]float64)}
	}

	for _, e := range expenses {
		if e.Category == "" {
			continue
		}

		bucket := model.CategoryOf(e.Category)
		breakdown := summary.Categories[bucket]
		breakdown.Items[e.DescriptionOrDefault()] += e.Amount
		breakdown.Total += e.Amount
		summary.Categories[bucket] = breakdown

		summary.TotalExpenses += e.Amount
	}

	return summary
}

// CategoryVariance compares one category's planned and actual spend
type CategoryVariance struct {
	Planned  float64 `json:"planned"`
	Actual   float64 `json:"actual"`
	Variance float64 `json:"variance"` // planned - actual; negative means over budget
}

// VarianceReport compares a planned budget against actual spend
type VarianceReport struct {
	Categories    map[string]CategoryVariance `json:"categories"`
	TotalPlanned  float64                     `json:"total_planned"`
	TotalActual   float64                     `json:"total_actual"`
	TotalVariance float64                     `json:"total_variance"`
}

// AnalyzeBudgetVariance computes planned minus actual across the union of
// both budgets' categories; amounts missing from either side count as 0.
func (s *BudgetService) AnalyzeBudgetVariance(planned, actual map[string]float64) VarianceReport {
	report := VarianceReport{
		Categories: make(map[string]CategoryVariance, len(planned)+len(actual)),
	}

	for category, amount := range planned {
		report.TotalPlanned += amount
		report.Categories[category] = CategoryVariance{Planned: amount}
	}
	for category, amount := range actual {
		report.TotalActual += amount
		entry := report.Categories[category]
		entry.Actual = amount
		report.Categories[category] = entry
	}

	for category, entry := range report.Categories {
		entry.Variance = entry.Planned - entry.Actual
		report.Categories[category] = entry
	}

	report.TotalVariance = report.TotalPlanned - report.TotalActual
	return report
}

// ProfitabilityReport summarizes an event's financial outcome. Fields are
// ordered as reported: revenue, expenses, profit, margin, ROI.
type ProfitabilityReport struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	ProfitMargin  float64 `json:"profit_margin"` // percent of revenue; 0 when revenue is 0
	ROI           float64 `json:"roi"`           // percent of expenses; 0 when expenses are 0
}

// CalculateProfitability totals revenue and expense streams and derives
// net profit, margin, and return on investment.
func (s *BudgetService) CalculateProfitability(revenue, expenses map[string]float64) ProfitabilityReport {
	report := ProfitabilityReport{}
	for _, amount := range revenue {
		report.TotalRevenue += amount
	}
	for _, amount := range expenses {
		report.TotalExpenses += amount
	}

	report.NetProfit = report.TotalRevenue - report.TotalExpenses
	if report.TotalRevenue > 0 {
		report.ProfitMargin = report.NetProfit / report.TotalRevenue * 100
	}
	if report.TotalExpenses > 0 {
		report.ROI = report.NetProfit / report.TotalExpenses * 100
	}

	return report
}

// PricingTier describes one admission tier for projection purposes
type PricingTier struct {
	Price      float64 `json:"price"`
	Percentage float64 `json:"percentage"` // share of attendees, 0-100
}

// CostProjection splits projected costs into fixed and variable parts
type CostProjection struct {
	Fixed    float64 `json:"fixed"`
	Variable float64 `json:"variable"`
	Total    float64 `json:"total"`
}

// RevenueProjection splits projected revenue by admission tier
type RevenueProjection struct {
	ByTier map[string]float64 `json:"by_tier"`
	Total  float64            `json:"total"`
}

// FinancialProjection is the projected financial outcome of an event
type FinancialProjection struct {
	Costs     CostProjection    `json:"costs"`
	Revenue   RevenueProjection `json:"revenue"`
	NetProfit float64           `json:"net_profit"`
}

// GenerateFinancialProjection apportions attendees across pricing tiers by
// each tier's percentage (truncated to whole attendees), prices them at
// the tier rate less the discount, and adds the configured variable cost
// per attendee on top of the fixed base cost. Out-of-range inputs are
// domain rejections, not validation failures.
func (s *BudgetService) GenerateFinancialProjection(baseCost float64, attendees int, tiers map[string]PricingTier, discountRate float64) (FinancialProjection, error) {
	if baseCost < 0 || attendees < 0 {
		return FinancialProjection{}, ErrNegativeProjectionInput
	}
	if tiers == nil {
		return FinancialProjection{}, ErrPricingTiersRequired
	}
	if discountRate < 0 || discountRate > 1 {
		return FinancialProjection{}, ErrDiscountRateOutOfRange
	}

	revenue := RevenueProjection{ByTier: make(map[string]float64, len(tiers))}
	for tier, details := range tiers {
		tierAttendees := int(float64(attendees) * details.Percentage / 100)
		tierRevenue := float64(tierAttendees) * details.Price * (1 - discountRate)

		revenue.ByTier[tier] = tierRevenue
		revenue.Total += tierRevenue
	}

	costs := CostProjection{
		Fixed:    baseCost,
		Variable: float64(attendees) * s.variableCostPerAttendee,
	}
	costs.Total = costs.Fixed + costs.Variable

	return FinancialProjection{
		Costs:     costs,
		Revenue:   revenue,
		NetProfit: revenue.Total - costs.Total,
	}, nil
}
