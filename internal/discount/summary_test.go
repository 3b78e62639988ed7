package discount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeAndValueLines(t *testing.T) {
	s := NewSummarizer("SEK")
	f := &FormState{
		DiscountTypes: FindOption(DiscountTypeOptions, DiscountTypePercentage),
		DiscountValue: "15",
	}

	lines := s.Summarize(f)
	assert.Contains(t, lines, "-Type : Percentage")
	assert.Contains(t, lines, "-Value : 15 % ")

	f.DiscountTypes = FindOption(DiscountTypeOptions, DiscountTypeAmount)
	lines = s.Summarize(f)
	assert.Contains(t, lines, "-Type : Amount")
	assert.Contains(t, lines, "-Value : 15 SEK ")
}

func TestValueLineNeedsType(t *testing.T) {
	s := NewSummarizer("")
	lines := s.Summarize(&FormState{DiscountValue: "15"})
	for _, line := range lines {
		assert.NotContains(t, line, "-Value")
	}
}

func TestShippingExclusionLine(t *testing.T) {
	s := NewSummarizer("SEK")
	f := &FormState{ExcludeShippingRate: true, ShippingRate: "50"}
	assert.Contains(t, s.Summarize(f), "-Exclude shipping rates over 50  SEK")

	// Turning the exclusion off clears the rate and removes the line.
	f.ExcludeShippingRate = false
	_, err := Apply(VariantFreeShipping, f, FieldExcludeShippingRate)
	require.NoError(t, err)
	for _, line := range s.Summarize(f) {
		assert.NotContains(t, line, "Exclude shipping rates")
	}
}

func TestEligibilityLines(t *testing.T) {
	s := NewSummarizer("")
	f := &FormState{CustomerEligibility: EligibilityAllCustomers}
	assert.Contains(t, s.Summarize(f), "-For All customers")

	f.CustomerEligibility = EligibilitySpecificCustomer
	f.CustomerSpecification = FindOption(CustomerSpecificationOptions, SpecificationRecentPurchased)
	assert.Contains(t, s.Summarize(f), "-For Customers that purchased recently")

	// Specific eligibility without a chosen specification stays silent.
	f.CustomerSpecification = nil
	for _, line := range s.Summarize(f) {
		assert.NotContains(t, line, "-For")
	}
}

func TestAppliesToLineListsProducts(t *testing.T) {
	s := NewSummarizer("")
	f := &FormState{
		AppliesTo: FindOption(AppliesToProductOptions, AppliesToSpecificProducts),
		SpecificProducts: []ProductOption{
			{Label: "Kanelbulle", Value: 4},
			{Label: "Limpa", Value: 9},
		},
	}
	assert.Contains(t, s.Summarize(f), "-Applies to Specific products : Kanelbulle, Limpa")

	f.AppliesTo = FindOption(AppliesToProductOptions, AppliesToAllProducts)
	f.SpecificProducts = nil
	assert.Contains(t, s.Summarize(f), "-Applies to All products")
}

func TestUsageLimitLines(t *testing.T) {
	s := NewSummarizer("")
	f := &FormState{MaximumDiscountUsage: UsageLimitPerCustomer}
	assert.Contains(t, s.Summarize(f), "-Limited to one use per user")

	f.MaximumDiscountUsage = UsageLimitTotal
	f.MaximumUsageValue = "100"
	assert.Contains(t, s.Summarize(f), "-Can be used a maximum of 100 times in total")
}

func TestCombinationLines(t *testing.T) {
	s := NewSummarizer("")
	assert.Contains(t, s.Summarize(NewFormState()), "-Can't Combine with others")

	f := &FormState{Combination: []string{CombinationProductDiscounts, CombinationShippingDiscounts}}
	assert.Contains(t, s.Summarize(f), "-Can Combine with Product Discounts, Shipping Discounts")
}

func TestShippingScopeLines(t *testing.T) {
	s := NewSummarizer("")
	f := &FormState{ShippingScope: ShippingScopeAllStates}
	assert.Contains(t, s.Summarize(f), "-Applies for all states")

	f.ShippingScope = ShippingScopeSpecificStates
	f.States = []Option{
		*FindOption(StateOptions, "Stockholm"),
		*FindOption(StateOptions, "Uppsala"),
	}
	assert.Contains(t, s.Summarize(f), "-Applies for Stockholm, Uppsala")
}

func TestMinimumRequirementLines(t *testing.T) {
	s := NewSummarizer("SEK")
	f := &FormState{MinimumPurchaseRequirement: RequirementNone}
	assert.Contains(t, s.Summarize(f), "-No minimum purchase requirement")

	f.MinimumPurchaseRequirement = RequirementMinimumPurchase
	f.MinimumPurchaseValue = "200"
	assert.Contains(t, s.Summarize(f), "-Minimum purchase of 200 SEK")

	f.MinimumPurchaseRequirement = RequirementMinimumItems
	f.MinimumPurchaseValue = ""
	f.MinimumItemValue = "3"
	assert.Contains(t, s.Summarize(f), "-Minimum quantity of 3 items")
}

func TestBuyGetLinesRequireScope(t *testing.T) {
	s := NewSummarizer("SEK")
	f := &FormState{BuyProductsQuantity: "3"}
	// Quantity alone is not enough; the product scope must be resolved.
	for _, line := range s.Summarize(f) {
		assert.NotContains(t, line, "Customer buys")
	}

	f.AppliesTo = FindOption(AppliesToBuyGetOptions, AppliesToAllProduct)
	lines := s.Summarize(f)
	assert.Contains(t, lines, "-Customer buys 3 items from all products")

	f.AppliesTo = FindOption(AppliesToBuyGetOptions, AppliesToSpecificProduct)
	f.BuyProducts = []ProductOption{{Label: "Bun", Value: 1}}
	assert.Contains(t, s.Summarize(f), "-Customer buys 3 items from Bun")

	f.GetAppliesTo = FindOption(AppliesToBuyGetOptions, AppliesToSpecificProduct)
	f.CustomerGetProducts = []ProductOption{{Label: "Roll", Value: 2}}
	f.CustomerGetsQuantity = "1"
	assert.Contains(t, s.Summarize(f), "-Customer gets 1 items from Roll")
}

func TestPerformanceLines(t *testing.T) {
	s := NewSummarizer("")
	f := &FormState{
		StartDate: "2026-09-01",
		StartTime: "14:30",
		EndDate:   "2026-09-30",
		EndTime:   "09:05",
	}
	lines := s.Summarize(f)
	assert.Contains(t, lines, "-Active from 2026-09-01")
	assert.Contains(t, lines, "-Active until 2026-09-30")
	assert.Contains(t, lines, "-Starts at 2:30 PM")
	assert.Contains(t, lines, "-Ends at 9:05 AM")
}

func TestSummaryLineOrder(t *testing.T) {
	s := NewSummarizer("SEK")
	f := fullOrderForm()
	lines := s.Summarize(f)
	require.Equal(t, []string{
		"-Code : FIKA15",
		"-Type : Percentage",
		"-Value : 15 % ",
		"-For All customers",
		"-Can be used a maximum of 100 times in total",
		"-Can Combine with Shipping Discounts",
		"-Minimum purchase of 200 SEK",
		"-Active from 2026-09-01",
		"-Starts at 8:00 AM",
	}, lines)
}

// Summarize is pure and restartable.
func TestSummaryIsIdempotent(t *testing.T) {
	s := NewSummarizer("SEK")
	f := fullOrderForm()
	first := s.Summarize(f)
	second := s.Summarize(f)
	assert.Equal(t, first, second)
}

func TestEmptyFormSummaryHasOnlyCombinationDefault(t *testing.T) {
	s := NewSummarizer("")
	assert.Equal(t, []string{"-Can't Combine with others"}, s.Summarize(NewFormState()))
}
