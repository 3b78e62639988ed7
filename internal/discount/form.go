package discount

import "strings"

// Option is a selectable choice: Label is display text, Value the wire key.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductOption is a product picked from the search multiselect. Value holds
// the product id.
type ProductOption struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// FormState holds the union of all discount form fields across variants.
// A fresh state is created per screen visit; the resolver's clears and the
// user's edits are the only mutations. Option-bearing fields always use the
// pair shape internally; only the payload builder unwraps them.
type FormState struct {
	Code                       string
	DiscountTypes              *Option
	DiscountValue              string
	AppliesTo                  *Option
	SpecificProducts           []ProductOption
	CustomerEligibility        string
	CustomerSpecification      *Option
	MinimumPurchaseRequirement string
	MinimumPurchaseValue       string
	MinimumItemValue           string
	MaximumDiscountUsage       string
	MaximumUsageValue          string
	Combination                []string
	StartDate                  string
	StartTime                  string
	EndDate                    string
	EndTime                    string
	CustomerBuyTypes           string
	BuyProducts                []ProductOption
	BuyProductsQuantity        string
	BuyProductsAmount          string
	CustomerGetsTypes          string
	CustomerGetsQuantity       string
	CustomerGetsAmount         string
	CustomerGetProducts        []ProductOption
	GetAppliesTo               *Option
	ShippingScope              string
	States                     []Option
	ExcludeShippingRate        bool
	ShippingRate               string
}

// NewFormState returns an empty form for the "add" flow.
func NewFormState() *FormState {
	return &FormState{}
}

// Clear resets a single field to its zero value. Unknown fields are ignored;
// the resolver only ever emits fields named in this switch.
func (f *FormState) Clear(field Field) {
	switch field {
	case FieldCode:
		f.Code = ""
	case FieldDiscountTypes:
		f.DiscountTypes = nil
	case FieldDiscountValue:
		f.DiscountValue = ""
	case FieldAppliesTo:
		f.AppliesTo = nil
	case FieldSpecificProducts:
		f.SpecificProducts = nil
	case FieldCustomerEligibility:
		f.CustomerEligibility = ""
	case FieldCustomerSpecification:
		f.CustomerSpecification = nil
	case FieldMinimumPurchaseRequirement:
		f.MinimumPurchaseRequirement = ""
	case FieldMinimumPurchaseValue:
		f.MinimumPurchaseValue = ""
	case FieldMinimumItemValue:
		f.MinimumItemValue = ""
	case FieldMaximumDiscountUsage:
		f.MaximumDiscountUsage = ""
	case FieldMaximumUsageValue:
		f.MaximumUsageValue = ""
	case FieldCombination:
		f.Combination = nil
	case FieldStartDate:
		f.StartDate = ""
	case FieldStartTime:
		f.StartTime = ""
	case FieldEndDate:
		f.EndDate = ""
	case FieldEndTime:
		f.EndTime = ""
	case FieldCustomerBuyTypes:
		f.CustomerBuyTypes = ""
	case FieldBuyProducts:
		f.BuyProducts = nil
	case FieldBuyProductsQuantity:
		f.BuyProductsQuantity = ""
	case FieldBuyProductsAmount:
		f.BuyProductsAmount = ""
	case FieldCustomerGetsTypes:
		f.CustomerGetsTypes = ""
	case FieldCustomerGetsQuantity:
		f.CustomerGetsQuantity = ""
	case FieldCustomerGetsAmount:
		f.CustomerGetsAmount = ""
	case FieldCustomerGetProducts:
		f.CustomerGetProducts = nil
	case FieldGetAppliesTo:
		f.GetAppliesTo = nil
	case FieldShippingScope:
		f.ShippingScope = ""
	case FieldStates:
		f.States = nil
	case FieldExcludeShippingRate:
		f.ExcludeShippingRate = false
	case FieldShippingRate:
		f.ShippingRate = ""
	}
}

// optionValue returns the wire value of an option pair, or "" when the pair
// is absent or malformed.
func optionValue(o *Option) string {
	if o == nil {
		return ""
	}
	return o.Value
}

func emptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}
