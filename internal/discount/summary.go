package discount

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DefaultCurrencyUnit is the shop currency used in money summary lines.
const DefaultCurrencyUnit = "SEK"

// Summarizer renders the live preview panel: a fixed-order list of lines
// describing the current form. Summarize is pure; the same form always
// yields the same lines.
type Summarizer struct {
	CurrencyUnit string
}

func NewSummarizer(currencyUnit string) *Summarizer {
	if currencyUnit == "" {
		currencyUnit = DefaultCurrencyUnit
	}
	return &Summarizer{CurrencyUnit: currencyUnit}
}

// Summarize evaluates each summary rule independently and concatenates the
// produced lines in fixed order. Empty fields produce no line; the line set
// and its order are contract, asserted by tests.
func (s *Summarizer) Summarize(f *FormState) []string {
	var lines []string
	add := func(line string) {
		if line != "" {
			lines = append(lines, line)
		}
	}

	add(s.codeLine(f))
	add(s.typeLine(f))
	add(s.valueLine(f))
	add(s.eligibilityLine(f))
	add(s.appliesToLine(f))
	add(s.usageLimitLine(f))
	add(s.combinationLine(f))
	add(s.shippingScopeLine(f))
	add(s.shippingExclusionLine(f))
	add(s.minimumRequirementLine(f))
	add(s.buyLine(f))
	add(s.getLine(f))
	lines = append(lines, s.performanceLines(f)...)
	return lines
}

func (s *Summarizer) codeLine(f *FormState) string {
	if emptyString(f.Code) {
		return ""
	}
	return fmt.Sprintf("-Code : %s", f.Code)
}

func (s *Summarizer) typeLine(f *FormState) string {
	if f.DiscountTypes == nil || f.DiscountTypes.Label == "" {
		return ""
	}
	return fmt.Sprintf("-Type : %s", f.DiscountTypes.Label)
}

func (s *Summarizer) valueLine(f *FormState) string {
	if emptyString(f.DiscountValue) {
		return ""
	}
	switch optionValue(f.DiscountTypes) {
	case DiscountTypePercentage:
		return fmt.Sprintf("-Value : %s %% ", f.DiscountValue)
	case DiscountTypeAmount:
		return fmt.Sprintf("-Value : %s %s ", f.DiscountValue, s.CurrencyUnit)
	}
	return ""
}

// eligibilitySummaries are the fixed phrases keyed by customer specification.
var eligibilitySummaries = map[string]string{
	SpecificationHaventPurchased:       "-For Customers that haven't purchased anything",
	SpecificationRecentPurchased:       "-For Customers that purchased recently",
	SpecificationPurchasedOnce:         "-For Customers that purchased once",
	SpecificationPurchasedMoreThanOnce: "-For Customers that purchased more than once",
}

func (s *Summarizer) eligibilityLine(f *FormState) string {
	switch f.CustomerEligibility {
	case EligibilityAllCustomers:
		return "-For All customers"
	case EligibilitySpecificCustomer:
		return eligibilitySummaries[optionValue(f.CustomerSpecification)]
	}
	return ""
}

func (s *Summarizer) appliesToLine(f *FormState) string {
	if f.AppliesTo == nil || f.AppliesTo.Label == "" {
		return ""
	}
	line := fmt.Sprintf("-Applies to %s", f.AppliesTo.Label)
	if f.AppliesTo.Value == AppliesToSpecificProducts && len(f.SpecificProducts) > 0 {
		line += " : " + joinProductNames(f.SpecificProducts)
	}
	return line
}

func (s *Summarizer) usageLimitLine(f *FormState) string {
	switch f.MaximumDiscountUsage {
	case UsageLimitPerCustomer:
		return "-Limited to one use per user"
	case UsageLimitTotal:
		if emptyString(f.MaximumUsageValue) {
			return ""
		}
		return fmt.Sprintf("-Can be used a maximum of %s times in total", f.MaximumUsageValue)
	}
	return ""
}

func (s *Summarizer) combinationLine(f *FormState) string {
	if len(f.Combination) == 0 {
		return "-Can't Combine with others"
	}
	labels := lo.Map(f.Combination, func(kind string, _ int) string {
		if label, ok := combinationLabels[kind]; ok {
			return label
		}
		return kind
	})
	return fmt.Sprintf("-Can Combine with %s", strings.Join(labels, ", "))
}

func (s *Summarizer) shippingScopeLine(f *FormState) string {
	switch f.ShippingScope {
	case ShippingScopeAllStates:
		return "-Applies for all states"
	case ShippingScopeSpecificStates:
		if len(f.States) == 0 {
			return ""
		}
		labels := lo.Map(f.States, func(o Option, _ int) string { return o.Label })
		return fmt.Sprintf("-Applies for %s", strings.Join(labels, ", "))
	}
	return ""
}

func (s *Summarizer) shippingExclusionLine(f *FormState) string {
	if !f.ExcludeShippingRate || emptyString(f.ShippingRate) {
		return ""
	}
	return fmt.Sprintf("-Exclude shipping rates over %s  %s", f.ShippingRate, s.CurrencyUnit)
}

func (s *Summarizer) minimumRequirementLine(f *FormState) string {
	switch f.MinimumPurchaseRequirement {
	case RequirementNone:
		return "-No minimum purchase requirement"
	case RequirementMinimumPurchase:
		if emptyString(f.MinimumPurchaseValue) {
			return ""
		}
		return fmt.Sprintf("-Minimum purchase of %s %s", f.MinimumPurchaseValue, s.CurrencyUnit)
	case RequirementMinimumItems:
		if emptyString(f.MinimumItemValue) {
			return ""
		}
		return fmt.Sprintf("-Minimum quantity of %s items", f.MinimumItemValue)
	}
	return ""
}

// buyLine and getLine emit only when a quantity or amount is set and the
// product scope is resolved (all products, or at least one picked product).
func (s *Summarizer) buyLine(f *FormState) string {
	scope, ok := productScope(f.AppliesTo, f.BuyProducts)
	if !ok {
		return ""
	}
	switch {
	case !emptyString(f.BuyProductsQuantity):
		return fmt.Sprintf("-Customer buys %s items from %s", f.BuyProductsQuantity, scope)
	case !emptyString(f.BuyProductsAmount):
		return fmt.Sprintf("-Customer spends %s %s on %s", f.BuyProductsAmount, s.CurrencyUnit, scope)
	}
	return ""
}

func (s *Summarizer) getLine(f *FormState) string {
	scope, ok := productScope(f.GetAppliesTo, f.CustomerGetProducts)
	if !ok {
		return ""
	}
	switch {
	case !emptyString(f.CustomerGetsQuantity):
		return fmt.Sprintf("-Customer gets %s items from %s", f.CustomerGetsQuantity, scope)
	case !emptyString(f.CustomerGetsAmount):
		return fmt.Sprintf("-Customer gets %s %s worth from %s", f.CustomerGetsAmount, s.CurrencyUnit, scope)
	}
	return ""
}

func (s *Summarizer) performanceLines(f *FormState) []string {
	var lines []string
	if !emptyString(f.StartDate) {
		lines = append(lines, fmt.Sprintf("-Active from %s", f.StartDate))
	}
	if !emptyString(f.EndDate) {
		lines = append(lines, fmt.Sprintf("-Active until %s", f.EndDate))
	}
	if !emptyString(f.StartTime) {
		lines = append(lines, fmt.Sprintf("-Starts at %s", clock12(f.StartTime)))
	}
	if !emptyString(f.EndTime) {
		lines = append(lines, fmt.Sprintf("-Ends at %s", clock12(f.EndTime)))
	}
	return lines
}

// productScope resolves the buy/get product selection to display text.
func productScope(appliesTo *Option, products []ProductOption) (string, bool) {
	if optionValue(appliesTo) == AppliesToAllProduct {
		return "all products", true
	}
	if len(products) > 0 {
		return joinProductNames(products), true
	}
	return "", false
}

func joinProductNames(products []ProductOption) string {
	names := lo.Map(products, func(p ProductOption, _ int) string { return p.Label })
	return strings.Join(names, ", ")
}

// clock12 formats a 24-hour "HH:MM" form time on a 12-hour clock. Values
// that do not parse are shown as entered.
func clock12(value string) string {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}
