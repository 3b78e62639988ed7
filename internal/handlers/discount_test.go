package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brodverk-backend/internal/apperr"
	"brodverk-backend/internal/discount"
)

func TestValidatePayloadRejectsUnknownCouponType(t *testing.T) {
	err := validatePayload(discount.Payload{"coupon_type": "percentage_off_everything"})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.FieldErrors, "coupon_type")
}

func TestValidatePayloadRejectsMissingCouponType(t *testing.T) {
	err := validatePayload(discount.Payload{"code": "FIKA15"})
	require.Error(t, err)
}

func TestValidatePayloadRejectsForeignField(t *testing.T) {
	// discount_value is a real field, but not one free shipping carries.
	err := validatePayload(discount.Payload{
		"coupon_type":    "free_shipping",
		"code":           "FRAKTFRITT",
		"discount_value": float64(15),
	})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.FieldErrors, "discount_value")
}

func TestValidatePayloadRejectsNonNumericValue(t *testing.T) {
	err := validatePayload(discount.Payload{
		"coupon_type":    "amount_off_order",
		"code":           "FIKA15",
		"discount_value": "fifteen",
	})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Contains(t, appErr.FieldErrors, "discount_value")
	assert.Equal(t, []string{"Must be a number"}, appErr.FieldErrors["discount_value"])
}

func TestValidatePayloadRejectsNonNumericShippingRate(t *testing.T) {
	err := validatePayload(discount.Payload{
		"coupon_type":   "free_shipping",
		"code":          "FRAKTFRITT",
		"shipping_rate": "femtio",
	})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Contains(t, appErr.FieldErrors, "shipping_rate")
}

func TestValidatePayloadRejectsBadStatus(t *testing.T) {
	err := validatePayload(discount.Payload{
		"coupon_type": "amount_off_order",
		"status":      "archived",
	})
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Contains(t, appErr.FieldErrors, "status")
}

func TestValidatePayloadAcceptsWellFormedPayload(t *testing.T) {
	err := validatePayload(discount.Payload{
		"coupon_type":          "amount_off_order",
		"status":               "draft",
		"code":                 "FIKA15",
		"discount_types":       "percentage",
		"discount_value":       float64(15),
		"customer_eligibility": "all_customer",
	})
	assert.NoError(t, err)
}

func TestRenderErrorIncludesFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	renderError(c, apperr.New(apperr.CodeAlreadyExists, "discount code already exists").
		WithField("code", "Code has already been taken"))

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var body struct {
		Error  string              `json:"error"`
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "discount code already exists", body.Error)
	assert.Equal(t, []string{"Code has already been taken"}, body.Errors["code"])
}

func TestRenderErrorWrapsForeignErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	renderError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestPaginationBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 20},
		{"page=3&limit=50", 3, 50},
		{"page=0&limit=0", 1, 20},
		{"page=2&limit=500", 2, 20},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)

		page, limit := pagination(c)
		assert.Equal(t, tc.wantPage, page, tc.query)
		assert.Equal(t, tc.wantLimit, limit, tc.query)
	}
}
