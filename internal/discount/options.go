package discount

// Option sets backing the select inputs. Load uses them to re-hydrate a
// fetched record's raw scalar back into the {label, value} pair the form
// holds; the summary uses their labels.

var DiscountTypeOptions = []Option{
	{Label: "Percentage", Value: DiscountTypePercentage},
	{Label: "Amount", Value: DiscountTypeAmount},
}

var AppliesToProductOptions = []Option{
	{Label: "All products", Value: AppliesToAllProducts},
	{Label: "Specific products", Value: AppliesToSpecificProducts},
}

// Buy-X-get-Y uses the singular value spelling on both sides.
var AppliesToBuyGetOptions = []Option{
	{Label: "All products", Value: AppliesToAllProduct},
	{Label: "Specific products", Value: AppliesToSpecificProduct},
}

var CustomerSpecificationOptions = []Option{
	{Label: "Customers that haven't purchased anything", Value: SpecificationHaventPurchased},
	{Label: "Customers that purchased recently", Value: SpecificationRecentPurchased},
	{Label: "Customers that purchased once", Value: SpecificationPurchasedOnce},
	{Label: "Customers that purchased more than once", Value: SpecificationPurchasedMoreThanOnce},
}

var CustomerGetsTypeOptions = []Option{
	{Label: "Free", Value: GetsTypeFree},
	{Label: "Percentage", Value: GetsTypePercentage},
	{Label: "Amount", Value: GetsTypeAmount},
}

// StateOptions lists the delivery regions the shop serves.
var StateOptions = []Option{
	{Label: "Stockholm", Value: "Stockholm"},
	{Label: "Uppsala", Value: "Uppsala"},
	{Label: "Södermanland", Value: "Södermanland"},
	{Label: "Östergötland", Value: "Östergötland"},
	{Label: "Jönköping", Value: "Jönköping"},
	{Label: "Kronoberg", Value: "Kronoberg"},
	{Label: "Kalmar", Value: "Kalmar"},
	{Label: "Gotland", Value: "Gotland"},
	{Label: "Blekinge", Value: "Blekinge"},
	{Label: "Skåne", Value: "Skåne"},
	{Label: "Halland", Value: "Halland"},
	{Label: "Västra Götaland", Value: "Västra Götaland"},
	{Label: "Värmland", Value: "Värmland"},
	{Label: "Örebro", Value: "Örebro"},
	{Label: "Västmanland", Value: "Västmanland"},
	{Label: "Dalarna", Value: "Dalarna"},
	{Label: "Gävleborg", Value: "Gävleborg"},
	{Label: "Västernorrland", Value: "Västernorrland"},
	{Label: "Jämtland", Value: "Jämtland"},
	{Label: "Västerbotten", Value: "Västerbotten"},
	{Label: "Norrbotten", Value: "Norrbotten"},
}

// combinationLabels translates combination kind tags for the summary.
var combinationLabels = map[string]string{
	CombinationProductDiscounts:  "Product Discounts",
	CombinationOrderDiscounts:    "Order Discounts",
	CombinationShippingDiscounts: "Shipping Discounts",
}

// FindOption looks an option up by wire value. When the value exists but no
// option matches (an older record, say), a pair is synthesized from the raw
// value so the round trip through submit preserves it.
func FindOption(set []Option, value string) *Option {
	if value == "" {
		return nil
	}
	for _, o := range set {
		if o.Value == value {
			return &Option{Label: o.Label, Value: o.Value}
		}
	}
	return &Option{Label: value, Value: value}
}

// AppliesToOptions returns the applies-to option set for a variant.
func AppliesToOptions(v Variant) []Option {
	if v == VariantBuyXGetY {
		return AppliesToBuyGetOptions
	}
	return AppliesToProductOptions
}
