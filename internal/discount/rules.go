package discount

// Effect is the outcome of re-evaluating the field rules after one field
// changed. Clear lists dependent fields that must be emptied; Require lists
// fields the new selection makes mandatory. The resolver never mutates the
// form; the controller applies the clears.
type Effect struct {
	Clear   []Field
	Require []Field
}

func (e *Effect) clear(fields ...Field) {
	e.Clear = append(e.Clear, fields...)
}

func (e *Effect) require(fields ...Field) {
	e.Require = append(e.Require, fields...)
}

// Resolve encodes every conditional clear/require rule as a pure function of
// (variant, current values, changed field). An unknown variant fails fast.
func Resolve(v Variant, f *FormState, changed Field) (Effect, error) {
	if !v.Valid() {
		return Effect{}, ErrUnknownVariant
	}

	var e Effect
	switch changed {
	case FieldMinimumPurchaseRequirement:
		switch f.MinimumPurchaseRequirement {
		case RequirementMinimumItems:
			e.clear(FieldMinimumPurchaseValue)
			e.require(FieldMinimumItemValue)
		case RequirementMinimumPurchase:
			e.clear(FieldMinimumItemValue)
			e.require(FieldMinimumPurchaseValue)
		case RequirementNone:
			e.clear(FieldMinimumPurchaseValue, FieldMinimumItemValue)
		}

	case FieldMaximumDiscountUsage:
		switch f.MaximumDiscountUsage {
		case UsageLimitPerCustomer:
			e.clear(FieldMaximumUsageValue)
		case UsageLimitTotal:
			e.require(FieldMaximumUsageValue)
		}

	case FieldCustomerEligibility:
		switch f.CustomerEligibility {
		case EligibilityAllCustomers:
			e.clear(FieldCustomerSpecification)
		case EligibilitySpecificCustomer:
			e.require(FieldCustomerSpecification)
		}

	case FieldAppliesTo:
		switch v {
		case VariantAmountOffProduct:
			switch optionValue(f.AppliesTo) {
			case AppliesToAllProducts:
				e.clear(FieldSpecificProducts)
			case AppliesToSpecificProducts:
				e.require(FieldSpecificProducts)
			}
		case VariantBuyXGetY:
			switch optionValue(f.AppliesTo) {
			case AppliesToAllProduct:
				e.clear(FieldBuyProducts)
			case AppliesToSpecificProduct:
				e.require(FieldBuyProducts)
			}
		}

	case FieldGetAppliesTo:
		if v == VariantBuyXGetY {
			switch optionValue(f.GetAppliesTo) {
			case AppliesToAllProduct:
				e.clear(FieldCustomerGetProducts)
			case AppliesToSpecificProduct:
				e.require(FieldCustomerGetProducts)
			}
		}

	case FieldShippingScope:
		switch f.ShippingScope {
		case ShippingScopeAllStates:
			e.clear(FieldStates)
		case ShippingScopeSpecificStates:
			e.require(FieldStates)
		}

	case FieldExcludeShippingRate:
		if f.ExcludeShippingRate {
			e.require(FieldShippingRate)
		} else {
			e.clear(FieldShippingRate)
		}

	case FieldCustomerBuyTypes:
		// Selecting one buy mode zeroes the other mode's fields on both the
		// buy and get sides.
		switch f.CustomerBuyTypes {
		case BuyTypeMinimumItemsQuantity:
			e.clear(FieldBuyProductsAmount, FieldCustomerGetsAmount)
			e.require(FieldBuyProductsQuantity)
		case BuyTypeMinimumPurchaseAmount:
			e.clear(FieldBuyProductsQuantity, FieldCustomerGetsQuantity)
			e.require(FieldBuyProductsAmount)
		}

	case FieldCustomerGetsTypes:
		if f.CustomerGetsTypes == GetsTypeFree {
			e.clear(FieldDiscountValue)
		}
	}

	return e, nil
}

// Apply runs the resolver for the changed field and empties every field the
// effect marks for clearing.
func Apply(v Variant, f *FormState, changed Field) (Effect, error) {
	e, err := Resolve(v, f, changed)
	if err != nil {
		return Effect{}, err
	}
	for _, field := range e.Clear {
		f.Clear(field)
	}
	return e, nil
}
