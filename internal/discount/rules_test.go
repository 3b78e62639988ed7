package discount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnknownVariant(t *testing.T) {
	_, err := Resolve(Variant("percent_off"), NewFormState(), FieldCode)
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestMinimumPurchaseRequirementSwitch(t *testing.T) {
	f := NewFormState()
	f.MinimumPurchaseRequirement = RequirementMinimumPurchase
	f.MinimumPurchaseValue = "200"

	// Switching to minimum items clears the purchase value.
	f.MinimumPurchaseRequirement = RequirementMinimumItems
	_, err := Apply(VariantAmountOffOrder, f, FieldMinimumPurchaseRequirement)
	require.NoError(t, err)
	assert.Empty(t, f.MinimumPurchaseValue)

	f.MinimumItemValue = "3"
	f.MinimumPurchaseRequirement = RequirementNone
	_, err = Apply(VariantAmountOffOrder, f, FieldMinimumPurchaseRequirement)
	require.NoError(t, err)
	assert.Empty(t, f.MinimumPurchaseValue)
	assert.Empty(t, f.MinimumItemValue)
}

func TestPerCustomerClearsUsageValue(t *testing.T) {
	f := NewFormState()
	f.MaximumDiscountUsage = UsageLimitTotal
	f.MaximumUsageValue = "10"

	f.MaximumDiscountUsage = UsageLimitPerCustomer
	_, err := Apply(VariantAmountOffProduct, f, FieldMaximumDiscountUsage)
	require.NoError(t, err)
	assert.Empty(t, f.MaximumUsageValue)
}

func TestAllCustomersClearsSpecification(t *testing.T) {
	f := NewFormState()
	f.CustomerEligibility = EligibilitySpecificCustomer
	f.CustomerSpecification = FindOption(CustomerSpecificationOptions, SpecificationRecentPurchased)

	f.CustomerEligibility = EligibilityAllCustomers
	_, err := Apply(VariantAmountOffOrder, f, FieldCustomerEligibility)
	require.NoError(t, err)
	assert.Nil(t, f.CustomerSpecification)
}

func TestAllProductsClearsSpecificProducts(t *testing.T) {
	f := NewFormState()
	f.AppliesTo = FindOption(AppliesToProductOptions, AppliesToSpecificProducts)
	f.SpecificProducts = []ProductOption{{Label: "Kanelbulle", Value: 4}}

	f.AppliesTo = FindOption(AppliesToProductOptions, AppliesToAllProducts)
	_, err := Apply(VariantAmountOffProduct, f, FieldAppliesTo)
	require.NoError(t, err)
	assert.Empty(t, f.SpecificProducts)
}

func TestAllStatesClearsStates(t *testing.T) {
	f := NewFormState()
	f.ShippingScope = ShippingScopeSpecificStates
	f.States = []Option{*FindOption(StateOptions, "Stockholm")}

	f.ShippingScope = ShippingScopeAllStates
	_, err := Apply(VariantFreeShipping, f, FieldShippingScope)
	require.NoError(t, err)
	assert.Empty(t, f.States)
}

func TestDisablingShippingRateExclusionClearsRate(t *testing.T) {
	f := NewFormState()
	f.ExcludeShippingRate = true
	f.ShippingRate = "50"

	f.ExcludeShippingRate = false
	_, err := Apply(VariantFreeShipping, f, FieldExcludeShippingRate)
	require.NoError(t, err)
	assert.Empty(t, f.ShippingRate)
}

func TestBuyTypeSwitchZeroesCounterpartMode(t *testing.T) {
	f := NewFormState()
	f.CustomerBuyTypes = BuyTypeMinimumItemsQuantity
	f.BuyProductsQuantity = "3"
	f.CustomerGetsQuantity = "1"

	// Switching to the amount mode zeroes the quantity fields on both sides.
	f.CustomerBuyTypes = BuyTypeMinimumPurchaseAmount
	_, err := Apply(VariantBuyXGetY, f, FieldCustomerBuyTypes)
	require.NoError(t, err)
	assert.Empty(t, f.BuyProductsQuantity)
	assert.Empty(t, f.CustomerGetsQuantity)

	f.BuyProductsAmount = "150"
	f.CustomerGetsAmount = "20"
	f.CustomerBuyTypes = BuyTypeMinimumItemsQuantity
	_, err = Apply(VariantBuyXGetY, f, FieldCustomerBuyTypes)
	require.NoError(t, err)
	assert.Empty(t, f.BuyProductsAmount)
	assert.Empty(t, f.CustomerGetsAmount)
}

func TestFreeGetsTypeClearsDiscountValue(t *testing.T) {
	f := NewFormState()
	f.CustomerGetsTypes = GetsTypePercentage
	f.DiscountValue = "25"

	f.CustomerGetsTypes = GetsTypeFree
	_, err := Apply(VariantBuyXGetY, f, FieldCustomerGetsTypes)
	require.NoError(t, err)
	assert.Empty(t, f.DiscountValue)
}

func TestBuyXGetYAllProductClearsBuyProducts(t *testing.T) {
	f := NewFormState()
	f.AppliesTo = FindOption(AppliesToBuyGetOptions, AppliesToSpecificProduct)
	f.BuyProducts = []ProductOption{{Label: "Bun", Value: 1}}

	f.AppliesTo = FindOption(AppliesToBuyGetOptions, AppliesToAllProduct)
	_, err := Apply(VariantBuyXGetY, f, FieldAppliesTo)
	require.NoError(t, err)
	assert.Empty(t, f.BuyProducts)

	f.GetAppliesTo = FindOption(AppliesToBuyGetOptions, AppliesToSpecificProduct)
	f.CustomerGetProducts = []ProductOption{{Label: "Roll", Value: 2}}
	f.GetAppliesTo = FindOption(AppliesToBuyGetOptions, AppliesToAllProduct)
	_, err = Apply(VariantBuyXGetY, f, FieldGetAppliesTo)
	require.NoError(t, err)
	assert.Empty(t, f.CustomerGetProducts)
}

func TestRequiredFieldsFollowSelection(t *testing.T) {
	f := NewFormState()
	f.MaximumDiscountUsage = UsageLimitTotal
	e, err := Resolve(VariantAmountOffOrder, f, FieldMaximumDiscountUsage)
	require.NoError(t, err)
	assert.Contains(t, e.Require, FieldMaximumUsageValue)
	assert.Empty(t, e.Clear)
}

// After a clearing trigger the dependent field no longer reaches the
// payload.
func TestClearedFieldsDropOutOfPayload(t *testing.T) {
	f := NewFormState()
	f.MinimumPurchaseRequirement = RequirementMinimumPurchase
	f.MinimumPurchaseValue = "200"

	f.MinimumPurchaseRequirement = RequirementMinimumItems
	_, err := Apply(VariantAmountOffOrder, f, FieldMinimumPurchaseRequirement)
	require.NoError(t, err)
	f.MinimumItemValue = "5"

	p, err := BuildPayload(VariantAmountOffOrder, f)
	require.NoError(t, err)
	assert.NotContains(t, p, string(FieldMinimumPurchaseValue))
	assert.Equal(t, float64(5), p[string(FieldMinimumItemValue)])
}
