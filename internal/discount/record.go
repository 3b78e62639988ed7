package discount

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Record is the API-normalized shape of a stored discount: flat scalars,
// raw wire values for option fields and {id, name} pairs for product
// references. It is what GET /discounts/{id} yields and what the store
// persists.
type Record struct {
	ID         string `json:"id"`
	CouponType string `json:"coupon_type"`
	Status     string `json:"status"`

	Code                       string       `json:"code,omitempty"`
	DiscountTypes              string       `json:"discount_types,omitempty"`
	DiscountValue              *float64     `json:"discount_value,omitempty"`
	AppliesTo                  string       `json:"applies_to,omitempty"`
	SpecificProducts           []ProductRef `json:"specific_products,omitempty"`
	CustomerEligibility        string       `json:"customer_eligibility,omitempty"`
	CustomerSpecification      string       `json:"customer_specification,omitempty"`
	MinimumPurchaseRequirement string       `json:"minimum_purchase_requirement,omitempty"`
	MinimumPurchaseValue       *float64     `json:"minimum_purchase_value,omitempty"`
	MinimumItemValue           *float64     `json:"minimum_item_value,omitempty"`
	MaximumDiscountUsage       string       `json:"maximum_discount_usage,omitempty"`
	MaximumUsageValue          *float64     `json:"maximum_usage_value,omitempty"`
	Combination                []string     `json:"combination,omitempty"`
	StartDate                  string       `json:"start_date,omitempty"`
	StartTime                  string       `json:"start_time,omitempty"`
	EndDate                    string       `json:"end_date,omitempty"`
	EndTime                    string       `json:"end_time,omitempty"`
	CustomerBuyTypes           string       `json:"customer_buy_types,omitempty"`
	BuyProducts                []ProductRef `json:"buy_products,omitempty"`
	BuyProductsQuantity        *float64     `json:"buy_products_quantity,omitempty"`
	BuyProductsAmount          *float64     `json:"buy_products_amount,omitempty"`
	CustomerGetsTypes          string       `json:"customer_gets_types,omitempty"`
	CustomerGetsQuantity       *float64     `json:"customer_gets_quantity,omitempty"`
	CustomerGetsAmount         *float64     `json:"customer_gets_amount,omitempty"`
	GetAppliesTo               string       `json:"get_applies_to,omitempty"`
	CustomerGetProducts        []ProductRef `json:"customer_get_products,omitempty"`
	ShippingScope              string       `json:"shipping_scope,omitempty"`
	States                     []string     `json:"states,omitempty"`
	ExcludeShippingRate        bool         `json:"exclude_shipping_rate,omitempty"`
	ShippingRate               *float64     `json:"shipping_rate,omitempty"`
}

// Variant returns the record's variant tag.
func (r *Record) Variant() Variant {
	return Variant(r.CouponType)
}

// HydrateForm maps a fetched record into the form the edit screen mutates:
// option fields are re-paired against their option sets, product references
// become multiselect entries, numbers become the strings the inputs hold.
func HydrateForm(v Variant, r *Record) *FormState {
	f := &FormState{
		Code:                       r.Code,
		DiscountTypes:              FindOption(DiscountTypeOptions, r.DiscountTypes),
		DiscountValue:              numberToField(r.DiscountValue),
		AppliesTo:                  FindOption(AppliesToOptions(v), r.AppliesTo),
		SpecificProducts:           hydrateProducts(r.SpecificProducts),
		CustomerEligibility:        r.CustomerEligibility,
		CustomerSpecification:      FindOption(CustomerSpecificationOptions, r.CustomerSpecification),
		MinimumPurchaseRequirement: r.MinimumPurchaseRequirement,
		MinimumPurchaseValue:       numberToField(r.MinimumPurchaseValue),
		MinimumItemValue:           numberToField(r.MinimumItemValue),
		MaximumDiscountUsage:       r.MaximumDiscountUsage,
		MaximumUsageValue:          numberToField(r.MaximumUsageValue),
		Combination:                r.Combination,
		StartDate:                  r.StartDate,
		StartTime:                  r.StartTime,
		EndDate:                    r.EndDate,
		EndTime:                    r.EndTime,
		CustomerBuyTypes:           r.CustomerBuyTypes,
		BuyProducts:                hydrateProducts(r.BuyProducts),
		BuyProductsQuantity:        numberToField(r.BuyProductsQuantity),
		BuyProductsAmount:          numberToField(r.BuyProductsAmount),
		CustomerGetsTypes:          r.CustomerGetsTypes,
		CustomerGetsQuantity:       numberToField(r.CustomerGetsQuantity),
		CustomerGetsAmount:         numberToField(r.CustomerGetsAmount),
		GetAppliesTo:               FindOption(AppliesToBuyGetOptions, r.GetAppliesTo),
		CustomerGetProducts:        hydrateProducts(r.CustomerGetProducts),
		ShippingScope:              r.ShippingScope,
		States: lo.FilterMap(r.States, func(value string, _ int) (Option, bool) {
			o := FindOption(StateOptions, value)
			if o == nil {
				return Option{}, false
			}
			return *o, true
		}),
		ExcludeShippingRate: r.ExcludeShippingRate,
		ShippingRate:        numberToField(r.ShippingRate),
	}
	return f
}

func hydrateProducts(refs []ProductRef) []ProductOption {
	if len(refs) == 0 {
		return nil
	}
	return lo.Map(refs, func(ref ProductRef, _ int) ProductOption {
		return ProductOption{Label: ref.Name, Value: ref.ID}
	})
}

// numberToField renders a stored number back into input text without
// trailing zeros, so "200" survives the edit round trip as "200".
func numberToField(n *float64) string {
	if n == nil {
		return ""
	}
	return decimal.NewFromFloat(*n).String()
}
