package discount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrateFormDropsEmptyStateEntries(t *testing.T) {
	record := &Record{
		CouponType:    VariantFreeShipping.CouponType(),
		Code:          "FRAKTFRITT",
		ShippingScope: ShippingScopeSpecificStates,
		States:        []string{"", "Stockholm", ""},
	}

	var form *FormState
	require.NotPanics(t, func() {
		form = HydrateForm(VariantFreeShipping, record)
	})

	require.Len(t, form.States, 1)
	assert.Equal(t, Option{Label: "Stockholm", Value: "Stockholm"}, form.States[0])
}

func TestHydrateFormKeepsUnknownStateValues(t *testing.T) {
	record := &Record{
		CouponType:    VariantFreeShipping.CouponType(),
		ShippingScope: ShippingScopeSpecificStates,
		States:        []string{"Gotland", "Atlantis"},
	}

	form := HydrateForm(VariantFreeShipping, record)
	require.Len(t, form.States, 2)
	assert.Equal(t, Option{Label: "Atlantis", Value: "Atlantis"}, form.States[1])
}
