package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/fete/internal/model"
)

func strPtr(s string) *string { return &s }

// ============================================================================
// Expense Categorization Tests
// ============================================================================

func TestCategorizeExpenses_NoExpenses(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	summary := svc.CategorizeExpenses()

	assert.Zero(t, summary.TotalExpenses)
	require.Len(t, summary.Categories, 6)
	for _, category := range model.ExpenseCategories {
		breakdown := summary.Categories[category]
		assert.Zero(t, breakdown.Total, "category %s", category)
		assert.Empty(t, breakdown.Items, "category %s", category)
	}
}

func TestCategorizeExpenses_Buckets(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	summary := svc.CategorizeExpenses(
		model.Expense{Category: "venue", Amount: 5000, Description: strPtr("Hall rental")},
		model.Expense{Category: "Catering", Amount: 3000, Description: strPtr("Dinner service")},
		model.Expense{Category: "venue", Amount: 500, Description: strPtr("Cleaning")},
	)

	venue := summary.Categories[model.ExpenseVenue]
	assert.InDelta(t, 5500.0, venue.Total, 1e-9)
	assert.InDelta(t, 5000.0, venue.Items["Hall rental"], 1e-9)
	assert.InDelta(t, 500.0, venue.Items["Cleaning"], 1e-9)

	assert.InDelta(t, 3000.0, summary.Categories[model.ExpenseCatering].Total, 1e-9)
	assert.InDelta(t, 8500.0, summary.TotalExpenses, 1e-9)
}

func TestCategorizeExpenses_UnknownCategoryFoldsIntoMiscellaneous(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	summary := svc.CategorizeExpenses(
		model.Expense{Category: "pyrotechnics", Amount: 500, Description: strPtr("Fireworks")},
	)

	misc := summary.Categories[model.ExpenseMiscellaneous]
	assert.InDelta(t, 500.0, misc.Total, 1e-9)
	assert.InDelta(t, 500.0, misc.Items["Fireworks"], 1e-9)
	assert.InDelta(t, 500.0, summary.TotalExpenses, 1e-9)
}

func TestCategorizeExpenses_MissingCategorySkipped(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	summary := svc.CategorizeExpenses(
		model.Expense{Amount: 999, Description: strPtr("Orphan")},
		model.Expense{Category: "staff", Amount: 100},
	)

	assert.InDelta(t, 100.0, summary.TotalExpenses, 1e-9)
	assert.Zero(t, summary.Categories[model.ExpenseMiscellaneous].Total)
}

func TestCategorizeExpenses_DefaultDescription(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	summary := svc.CategorizeExpenses(
		model.Expense{Category: "equipment", Amount: 250},
		model.Expense{Category: "equipment", Amount: 150},
	)

	equipment := summary.Categories[model.ExpenseEquipment]
	assert.InDelta(t, 400.0, equipment.Items[model.DefaultExpenseDescription], 1e-9)
}

// ============================================================================
// Budget Variance Tests
// ============================================================================

func TestAnalyzeBudgetVariance_Empty(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	report := svc.AnalyzeBudgetVariance(map[string]float64{}, map[string]float64{})

	assert.Zero(t, report.TotalVariance)
	assert.Empty(t, report.Categories)
}

func TestAnalyzeBudgetVariance_OverBudget(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	report := svc.AnalyzeBudgetVariance(
		map[string]float64{"venue": 1000},
		map[string]float64{"venue": 1200},
	)

	entry := report.Categories["venue"]
	assert.InDelta(t, 1000.0, entry.Planned, 1e-9)
	assert.InDelta(t, 1200.0, entry.Actual, 1e-9)
	assert.InDelta(t, -200.0, entry.Variance, 1e-9)
	assert.InDelta(t, -200.0, report.TotalVariance, 1e-9)
}

func TestAnalyzeBudgetVariance_UnionOfCategories(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	report := svc.AnalyzeBudgetVariance(
		map[string]float64{"venue": 5000, "catering": 3000},
		map[string]float64{"venue": 5500, "marketing": 1800},
	)

	require.Len(t, report.Categories, 3)
	assert.InDelta(t, 3000.0, report.Categories["catering"].Variance, 1e-9) // no actual spend
	assert.InDelta(t, -1800.0, report.Categories["marketing"].Variance, 1e-9)
	assert.InDelta(t, 8000.0, report.TotalPlanned, 1e-9)
	assert.InDelta(t, 7300.0, report.TotalActual, 1e-9)
	assert.InDelta(t, 700.0, report.TotalVariance, 1e-9)
}

// ============================================================================
// Profitability Tests
// ============================================================================

func TestCalculateProfitability(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	report := svc.CalculateProfitability(
		map[string]float64{"tickets": 10000},
		map[string]float64{"venue": 5000},
	)

	assert.InDelta(t, 10000.0, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 5000.0, report.TotalExpenses, 1e-9)
	assert.InDelta(t, 5000.0, report.NetProfit, 1e-9)
	assert.InDelta(t, 50.0, report.ProfitMargin, 1e-9)
	assert.InDelta(t, 100.0, report.ROI, 1e-9)
}

func TestCalculateProfitability_EmptyStreams(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	report := svc.CalculateProfitability(nil, nil)

	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.TotalExpenses)
	assert.Zero(t, report.NetProfit)
	assert.Zero(t, report.ProfitMargin)
	assert.Zero(t, report.ROI)
}

func TestCalculateProfitability_BreakEven(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	report := svc.CalculateProfitability(
		map[string]float64{"tickets": 5000},
		map[string]float64{"venue": 5000},
	)

	assert.Zero(t, report.NetProfit)
	assert.Zero(t, report.ProfitMargin)
	assert.Zero(t, report.ROI)
}

// ============================================================================
// Financial Projection Tests
// ============================================================================

func TestGenerateFinancialProjection(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	tiers := map[string]PricingTier{
		"standard": {Price: 50, Percentage: 100},
	}

	projection, err := svc.GenerateFinancialProjection(1000, 100, tiers, 0.1)
	require.NoError(t, err)

	// 100 attendees x $50 x 0.9 discount multiplier.
	assert.InDelta(t, 4500.0, projection.Revenue.Total, 1e-9)
	assert.InDelta(t, 4500.0, projection.Revenue.ByTier["standard"], 1e-9)
	assert.InDelta(t, 1000.0, projection.Costs.Fixed, 1e-9)
	assert.InDelta(t, 2500.0, projection.Costs.Variable, 1e-9) // 100 x 25
	assert.InDelta(t, 3500.0, projection.Costs.Total, 1e-9)
	assert.InDelta(t, 1000.0, projection.NetProfit, 1e-9)
}

func TestGenerateFinancialProjection_TierAttendeesTruncated(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	tiers := map[string]PricingTier{
		"standard": {Price: 100, Percentage: 65},
		"vip":      {Price: 200, Percentage: 35},
	}

	projection, err := svc.GenerateFinancialProjection(0, 99, tiers, 0)
	require.NoError(t, err)

	// 99 x 65% = 64.35 -> 64 attendees; 99 x 35% = 34.65 -> 34 attendees.
	assert.InDelta(t, 6400.0, projection.Revenue.ByTier["standard"], 1e-9)
	assert.InDelta(t, 6800.0, projection.Revenue.ByTier["vip"], 1e-9)
}

func TestGenerateFinancialProjection_ConfiguredVariableCost(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{VariableCostPerAttendee: 40})

	projection, err := svc.GenerateFinancialProjection(0, 10, map[string]PricingTier{}, 0)
	require.NoError(t, err)

	assert.InDelta(t, 400.0, projection.Costs.Variable, 1e-9)
}

func TestGenerateFinancialProjection_Rejections(t *testing.T) {
	t.Parallel()
	svc := NewBudgetService(BudgetServiceConfig{})

	tiers := map[string]PricingTier{"standard": {Price: 100, Percentage: 100}}

	_, err := svc.GenerateFinancialProjection(-1000, 10, tiers, 0)
	assert.ErrorIs(t, err, ErrNegativeProjectionInput)

	_, err = svc.GenerateFinancialProjection(1000, -10, tiers, 0)
	assert.ErrorIs(t, err, ErrNegativeProjectionInput)

	_, err = svc.GenerateFinancialProjection(1000, 10, nil, 0)
	assert.ErrorIs(t, err, ErrPricingTiersRequired)

	_, err = svc.GenerateFinancialProjection(1000, 10, tiers, 1.5)
	assert.ErrorIs(t, err, ErrDiscountRateOutOfRange)

	_, err = svc.GenerateFinancialProjection(1000, 10, tiers, -0.1)
	assert.ErrorIs(t, err, ErrDiscountRateOutOfRange)
}
