package discount

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Payload is the flat wire shape sent to the discounts API.
type Payload map[string]any

// CouponTypeKey is the variant discriminator key present in every payload.
const CouponTypeKey = "coupon_type"

// StatusKey carries the draft/active submit state alongside the form fields.
const StatusKey = "status"

// ProductRef is the payload shape of one selected product.
type ProductRef struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// numericFields are coerced from their string form value to a number.
var numericFields = map[Field]bool{
	FieldDiscountValue:        true,
	FieldMinimumPurchaseValue: true,
	FieldMinimumItemValue:     true,
	FieldMaximumUsageValue:    true,
	FieldShippingRate:         true,
	FieldBuyProductsQuantity:  true,
	FieldBuyProductsAmount:    true,
	FieldCustomerGetsQuantity: true,
	FieldCustomerGetsAmount:   true,
}

// IsNumericField reports whether f carries a numeric-semantic value. The API
// handlers use this to enforce the same coercion rules on inbound payloads.
func IsNumericField(f Field) bool {
	return numericFields[f]
}

// BuildPayload copies the variant's allow-listed fields out of the form,
// coercing numerics, unwrapping option pairs to their wire value and mapping
// product selections to {name, id}. Empty fields are omitted, never emitted
// as empty strings.
func BuildPayload(v Variant, f *FormState) (Payload, error) {
	if !v.Valid() {
		return nil, ErrUnknownVariant
	}

	p := Payload{CouponTypeKey: v.CouponType()}
	for _, field := range payloadAllowList[v] {
		value, err := fieldPayloadValue(f, field)
		if err != nil {
			return nil, err
		}
		if value != nil {
			p[string(field)] = value
		}
	}
	return p, nil
}

// fieldPayloadValue returns the payload representation of one field, or nil
// when the field is empty and must be omitted.
func fieldPayloadValue(f *FormState, field Field) (any, error) {
	switch field {
	case FieldCode:
		return stringOrNil(f.Code), nil
	case FieldDiscountTypes:
		return optionOrNil(f.DiscountTypes), nil
	case FieldAppliesTo:
		return optionOrNil(f.AppliesTo), nil
	case FieldGetAppliesTo:
		return optionOrNil(f.GetAppliesTo), nil
	case FieldCustomerSpecification:
		return optionOrNil(f.CustomerSpecification), nil
	case FieldSpecificProducts:
		return productsOrNil(f.SpecificProducts), nil
	case FieldBuyProducts:
		return productsOrNil(f.BuyProducts), nil
	case FieldCustomerGetProducts:
		return productsOrNil(f.CustomerGetProducts), nil
	case FieldStates:
		values := lo.FilterMap(f.States, func(o Option, _ int) (string, bool) {
			return o.Value, o.Value != ""
		})
		if len(values) == 0 {
			return nil, nil
		}
		return values, nil
	case FieldCombination:
		if len(f.Combination) == 0 {
			return nil, nil
		}
		return f.Combination, nil
	case FieldCustomerEligibility:
		return stringOrNil(f.CustomerEligibility), nil
	case FieldMinimumPurchaseRequirement:
		return stringOrNil(f.MinimumPurchaseRequirement), nil
	case FieldMaximumDiscountUsage:
		return stringOrNil(f.MaximumDiscountUsage), nil
	case FieldCustomerBuyTypes:
		return stringOrNil(f.CustomerBuyTypes), nil
	case FieldCustomerGetsTypes:
		return stringOrNil(f.CustomerGetsTypes), nil
	case FieldShippingScope:
		return stringOrNil(f.ShippingScope), nil
	case FieldStartDate:
		return stringOrNil(f.StartDate), nil
	case FieldStartTime:
		return stringOrNil(f.StartTime), nil
	case FieldEndDate:
		return stringOrNil(f.EndDate), nil
	case FieldEndTime:
		return stringOrNil(f.EndTime), nil
	case FieldExcludeShippingRate:
		return f.ExcludeShippingRate, nil
	case FieldDiscountValue:
		return numberOrNil(field, f.DiscountValue)
	case FieldMinimumPurchaseValue:
		return numberOrNil(field, f.MinimumPurchaseValue)
	case FieldMinimumItemValue:
		return numberOrNil(field, f.MinimumItemValue)
	case FieldMaximumUsageValue:
		return numberOrNil(field, f.MaximumUsageValue)
	case FieldShippingRate:
		return numberOrNil(field, f.ShippingRate)
	case FieldBuyProductsQuantity:
		return numberOrNil(field, f.BuyProductsQuantity)
	case FieldBuyProductsAmount:
		return numberOrNil(field, f.BuyProductsAmount)
	case FieldCustomerGetsQuantity:
		return numberOrNil(field, f.CustomerGetsQuantity)
	case FieldCustomerGetsAmount:
		return numberOrNil(field, f.CustomerGetsAmount)
	}
	return nil, nil
}

func stringOrNil(s string) any {
	if emptyString(s) {
		return nil
	}
	return s
}

// optionOrNil unwraps an option pair to its wire value. A pair without a
// value is treated as unset and omitted.
func optionOrNil(o *Option) any {
	if o == nil || o.Value == "" {
		return nil
	}
	return o.Value
}

func productsOrNil(products []ProductOption) any {
	if len(products) == 0 {
		return nil
	}
	return lo.Map(products, func(p ProductOption, _ int) ProductRef {
		return ProductRef{Name: p.Label, ID: p.Value}
	})
}

// numberOrNil parses a numeric-semantic field. Decimal parsing keeps values
// like "19.90" exact before the payload narrows them to float64.
func numberOrNil(field Field, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, &InvalidNumericFieldError{Field: field, Value: raw}
	}
	return d.InexactFloat64(), nil
}
