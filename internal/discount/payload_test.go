package discount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullOrderForm() *FormState {
	return &FormState{
		Code:                       "FIKA15",
		DiscountTypes:              FindOption(DiscountTypeOptions, DiscountTypePercentage),
		DiscountValue:              "15",
		CustomerEligibility:        EligibilityAllCustomers,
		MinimumPurchaseRequirement: RequirementMinimumPurchase,
		MinimumPurchaseValue:       "200",
		MaximumDiscountUsage:       UsageLimitTotal,
		MaximumUsageValue:          "100",
		Combination:                []string{CombinationShippingDiscounts},
		StartDate:                  "2026-09-01",
		StartTime:                  "08:00",
	}
}

func TestBuildPayloadUnknownVariant(t *testing.T) {
	_, err := BuildPayload(Variant("bogus"), NewFormState())
	require.ErrorIs(t, err, ErrUnknownVariant)
}

// Every payload key is allow-listed and coupon_type is the canonical tag.
func TestPayloadKeysStayInsideAllowList(t *testing.T) {
	f := fullOrderForm()
	// Present but outside the order variant's allow-list: must not leak.
	f.AppliesTo = FindOption(AppliesToProductOptions, AppliesToSpecificProducts)
	f.SpecificProducts = []ProductOption{{Label: "Limpa", Value: 9}}
	f.ShippingRate = "50"

	p, err := BuildPayload(VariantAmountOffOrder, f)
	require.NoError(t, err)

	assert.Equal(t, "amount_off_order", p[CouponTypeKey])
	for key := range p {
		if key == CouponTypeKey {
			continue
		}
		assert.True(t, Allows(VariantAmountOffOrder, Field(key)), "unexpected payload key %s", key)
	}
	assert.NotContains(t, p, string(FieldSpecificProducts))
	assert.NotContains(t, p, string(FieldShippingRate))
}

// Numeric-semantic fields are parsed; bad input is a builder fault.
func TestNumericCoercion(t *testing.T) {
	f := fullOrderForm()
	p, err := BuildPayload(VariantAmountOffOrder, f)
	require.NoError(t, err)
	assert.Equal(t, float64(15), p[string(FieldDiscountValue)])
	assert.Equal(t, float64(200), p[string(FieldMinimumPurchaseValue)])

	f.DiscountValue = "fifteen"
	_, err = BuildPayload(VariantAmountOffOrder, f)
	var numErr *InvalidNumericFieldError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, FieldDiscountValue, numErr.Field)
	assert.Equal(t, "fifteen", numErr.Value)
}

// Option pairs reach the payload as their wire value only.
func TestOptionPairsUnwrapToValue(t *testing.T) {
	p, err := BuildPayload(VariantAmountOffOrder, fullOrderForm())
	require.NoError(t, err)
	assert.Equal(t, DiscountTypePercentage, p[string(FieldDiscountTypes)])

	// A pair without a value is treated as unset.
	f := fullOrderForm()
	f.DiscountTypes = &Option{Label: "Percentage"}
	p, err = BuildPayload(VariantAmountOffOrder, f)
	require.NoError(t, err)
	assert.NotContains(t, p, string(FieldDiscountTypes))
}

func TestEmptyFieldsAreOmitted(t *testing.T) {
	p, err := BuildPayload(VariantAmountOffOrder, NewFormState())
	require.NoError(t, err)
	assert.Equal(t, Payload{CouponTypeKey: "amount_off_order"}, p)

	f := NewFormState()
	f.Code = "   "
	p, err = BuildPayload(VariantAmountOffOrder, f)
	require.NoError(t, err)
	assert.NotContains(t, p, string(FieldCode))
}

func TestProductMultiselectMapsToNameAndID(t *testing.T) {
	f := &FormState{
		CustomerBuyTypes:    BuyTypeMinimumItemsQuantity,
		BuyProductsQuantity: "3",
		AppliesTo:           FindOption(AppliesToBuyGetOptions, AppliesToSpecificProduct),
		BuyProducts:         []ProductOption{{Label: "Bun", Value: 1}},
	}
	p, err := BuildPayload(VariantBuyXGetY, f)
	require.NoError(t, err)

	assert.Equal(t, "buy_x_get_y", p[CouponTypeKey])
	assert.Equal(t, BuyTypeMinimumItemsQuantity, p[string(FieldCustomerBuyTypes)])
	assert.Equal(t, float64(3), p[string(FieldBuyProductsQuantity)])
	assert.Equal(t, []ProductRef{{Name: "Bun", ID: 1}}, p[string(FieldBuyProducts)])
}

func TestStatesReduceToValues(t *testing.T) {
	f := &FormState{
		ShippingScope: ShippingScopeSpecificStates,
		States: []Option{
			{Label: "Stockholm", Value: "Stockholm"},
			{Label: "broken entry"},
			{Label: "Skåne", Value: "Skåne"},
		},
		ExcludeShippingRate: true,
		ShippingRate:        "50",
	}
	p, err := BuildPayload(VariantFreeShipping, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stockholm", "Skåne"}, p[string(FieldStates)])
	assert.Equal(t, true, p[string(FieldExcludeShippingRate)])
	assert.Equal(t, float64(50), p[string(FieldShippingRate)])
}

func TestDecimalValuesSurvive(t *testing.T) {
	f := fullOrderForm()
	f.DiscountTypes = FindOption(DiscountTypeOptions, DiscountTypeAmount)
	f.DiscountValue = "19.90"
	p, err := BuildPayload(VariantAmountOffOrder, f)
	require.NoError(t, err)
	assert.Equal(t, 19.90, p[string(FieldDiscountValue)])
}
