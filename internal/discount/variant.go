package discount

// Variant identifies one of the four discount screens. The variant is fixed
// once a discount is created; editing never moves a record between variants.
type Variant string

const (
	VariantAmountOffProduct Variant = "amount_off_product"
	VariantAmountOffOrder   Variant = "amount_off_order"
	VariantBuyXGetY         Variant = "buy_x_get_y"
	VariantFreeShipping     Variant = "free_shipping"
)

// Valid reports whether v is one of the four known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantAmountOffProduct, VariantAmountOffOrder, VariantBuyXGetY, VariantFreeShipping:
		return true
	}
	return false
}

// CouponType returns the canonical coupon_type key emitted in payloads.
func (v Variant) CouponType() string {
	return string(v)
}

// Field names the union of form fields across all variants.
type Field string

const (
	FieldCode                       Field = "code"
	FieldDiscountTypes              Field = "discount_types"
	FieldDiscountValue              Field = "discount_value"
	FieldAppliesTo                  Field = "applies_to"
	FieldSpecificProducts           Field = "specific_products"
	FieldCustomerEligibility        Field = "customer_eligibility"
	FieldCustomerSpecification      Field = "customer_specification"
	FieldMinimumPurchaseRequirement Field = "minimum_purchase_requirement"
	FieldMinimumPurchaseValue       Field = "minimum_purchase_value"
	FieldMinimumItemValue           Field = "minimum_item_value"
	FieldMaximumDiscountUsage       Field = "maximum_discount_usage"
	FieldMaximumUsageValue          Field = "maximum_usage_value"
	FieldCombination                Field = "combination"
	FieldStartDate                  Field = "start_date"
	FieldStartTime                  Field = "start_time"
	FieldEndDate                    Field = "end_date"
	FieldEndTime                    Field = "end_time"
	FieldCustomerBuyTypes           Field = "customer_buy_types"
	FieldBuyProducts                Field = "buy_products"
	FieldBuyProductsQuantity        Field = "buy_products_quantity"
	FieldBuyProductsAmount          Field = "buy_products_amount"
	FieldCustomerGetsTypes          Field = "customer_gets_types"
	FieldCustomerGetsQuantity       Field = "customer_gets_quantity"
	FieldCustomerGetsAmount         Field = "customer_gets_amount"
	FieldCustomerGetProducts        Field = "customer_get_products"
	FieldGetAppliesTo               Field = "get_applies_to"
	FieldShippingScope              Field = "shipping_scope"
	FieldStates                     Field = "states"
	FieldExcludeShippingRate        Field = "exclude_shipping_rate"
	FieldShippingRate               Field = "shipping_rate"
)

// Selector value constants shared by the resolver, builder and summary.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeAmount     = "amount"

	AppliesToAllProducts      = "all_products"
	AppliesToSpecificProducts = "specific_products"
	// Buy-X-get-Y uses the singular spelling on both the buy and get side.
	AppliesToAllProduct      = "all_product"
	AppliesToSpecificProduct = "specific_product"

	EligibilityAllCustomers     = "all_customer"
	EligibilitySpecificCustomer = "specific_customer"

	SpecificationHaventPurchased       = "havent_purchased"
	SpecificationRecentPurchased       = "recent_purchased"
	SpecificationPurchasedOnce         = "purchased_once"
	SpecificationPurchasedMoreThanOnce = "purchased_more_than_once"

	RequirementNone            = "no_requirement"
	RequirementMinimumPurchase = "minimum_purchase"
	RequirementMinimumItems    = "minimum_items"

	UsageLimitTotal       = "limit_discount_usage_time"
	UsageLimitPerCustomer = "per_customer"

	CombinationProductDiscounts  = "product_discounts"
	CombinationOrderDiscounts    = "order_discounts"
	CombinationShippingDiscounts = "shipping_discounts"

	BuyTypeMinimumItemsQuantity  = "minimum_items_quantity"
	BuyTypeMinimumPurchaseAmount = "minimum_purchase_amount"

	GetsTypeFree       = "free"
	GetsTypePercentage = "percentage"
	GetsTypeAmount     = "amount"

	ShippingScopeAllStates      = "all_states"
	ShippingScopeSpecificStates = "specific_states"
)

// payloadAllowList fixes, per variant, the ordered set of fields the payload
// builder may emit. Nothing outside this list ever reaches the wire.
var payloadAllowList = map[Variant][]Field{
	VariantAmountOffProduct: {
		FieldCode, FieldDiscountTypes, FieldDiscountValue,
		FieldAppliesTo, FieldSpecificProducts,
		FieldCustomerEligibility, FieldCustomerSpecification,
		FieldMinimumPurchaseRequirement, FieldMinimumPurchaseValue, FieldMinimumItemValue,
		FieldMaximumDiscountUsage, FieldMaximumUsageValue,
		FieldCombination,
		FieldStartDate, FieldStartTime, FieldEndDate, FieldEndTime,
	},
	VariantAmountOffOrder: {
		FieldCode, FieldDiscountTypes, FieldDiscountValue,
		FieldCustomerEligibility, FieldCustomerSpecification,
		FieldMinimumPurchaseRequirement, FieldMinimumPurchaseValue, FieldMinimumItemValue,
		FieldMaximumDiscountUsage, FieldMaximumUsageValue,
		FieldCombination,
		FieldStartDate, FieldStartTime, FieldEndDate, FieldEndTime,
	},
	VariantBuyXGetY: {
		FieldCode,
		FieldCustomerBuyTypes, FieldBuyProductsQuantity, FieldBuyProductsAmount,
		FieldAppliesTo, FieldBuyProducts,
		FieldCustomerGetsTypes, FieldCustomerGetsQuantity, FieldCustomerGetsAmount,
		FieldGetAppliesTo, FieldCustomerGetProducts,
		FieldDiscountTypes, FieldDiscountValue,
		FieldCustomerEligibility, FieldCustomerSpecification,
		FieldMaximumDiscountUsage, FieldMaximumUsageValue,
		FieldCombination,
		FieldStartDate, FieldStartTime, FieldEndDate, FieldEndTime,
	},
	VariantFreeShipping: {
		FieldCode,
		FieldCustomerEligibility, FieldCustomerSpecification,
		FieldMinimumPurchaseRequirement, FieldMinimumPurchaseValue, FieldMinimumItemValue,
		FieldMaximumDiscountUsage, FieldMaximumUsageValue,
		FieldCombination,
		FieldShippingScope, FieldStates,
		FieldExcludeShippingRate, FieldShippingRate,
		FieldStartDate, FieldStartTime, FieldEndDate, FieldEndTime,
	},
}

// AllowList returns the payload allow-list for a variant. The returned slice
// is shared; callers must not mutate it.
func AllowList(v Variant) []Field {
	return payloadAllowList[v]
}

// Allows reports whether field f may appear in v's payload.
func Allows(v Variant, f Field) bool {
	for _, af := range payloadAllowList[v] {
		if af == f {
			return true
		}
	}
	return false
}
