package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/apperr"
	"brodverk-backend/internal/database"
	"brodverk-backend/internal/discount"
	"brodverk-backend/internal/models"
)

type DiscountHandler struct {
	store      *database.DiscountStore
	summarizer *discount.Summarizer
}

func NewDiscountHandler(db *sql.DB, currencyUnit string) *DiscountHandler {
	return &DiscountHandler{
		store:      database.NewDiscountStore(db),
		summarizer: discount.NewSummarizer(currencyUnit),
	}
}

func (h *DiscountHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	status := c.Query("status")
	couponType := c.Query("coupon_type")

	records, total, err := h.store.List(c.Request.Context(), page, limit, status, couponType)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DiscountListResponse{
		Discounts: records,
		Total:     total,
		Page:      page,
		Limit:     limit,
	})
}

func (h *DiscountHandler) Get(c *gin.Context) {
	record, err := h.store.Fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Summary renders the human-readable description lines for a stored
// discount, the same text the console shows in its summary card.
func (h *DiscountHandler) Summary(c *gin.Context) {
	record, err := h.store.Fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	variant := record.Variant()
	if !variant.Valid() {
		renderError(c, apperr.New(apperr.CodeInternal, "stored discount has unknown coupon type"))
		return
	}

	form := discount.HydrateForm(variant, record)
	c.JSON(http.StatusOK, gin.H{"summary": h.summarizer.Summarize(form)})
}

func (h *DiscountHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		renderError(c, err)
		return
	}

	record, err := h.store.Create(c.Request.Context(), payload)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *DiscountHandler) Update(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		renderError(c, err)
		return
	}

	record, err := h.store.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *DiscountHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
}

// bindPayload decodes and validates an incoming discount payload. The same
// allow-list and numeric rules the form builder applies client-side are
// enforced here so hand-crafted requests cannot smuggle foreign fields in.
func bindPayload(c *gin.Context) (discount.Payload, error) {
	var payload discount.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, apperr.New(apperr.CodeValidation, "invalid request body")
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validatePayload(payload discount.Payload) error {
	rawType, _ := payload[discount.CouponTypeKey].(string)
	variant := discount.Variant(rawType)
	if !variant.Valid() {
		return apperr.New(apperr.CodeValidation, "unknown coupon type").
			WithField(discount.CouponTypeKey, "Coupon type is not supported")
	}

	if raw, ok := payload[discount.StatusKey]; ok {
		status, _ := raw.(string)
		if status != models.DiscountStatusDraft && status != models.DiscountStatusActive {
			return apperr.New(apperr.CodeValidation, "invalid status").
				WithField(discount.StatusKey, "Status must be draft or active")
		}
	}

	for key, value := range payload {
		if key == discount.CouponTypeKey || key == discount.StatusKey {
			continue
		}
		field := discount.Field(key)
		if !discount.Allows(variant, field) {
			return apperr.New(apperr.CodeValidation, "field not permitted for this coupon type").
				WithField(key, "Field is not permitted for this coupon type")
		}
		if discount.IsNumericField(field) && !isNumber(value) {
			return apperr.New(apperr.CodeValidation, "invalid numeric field").
				WithField(key, "Must be a number")
		}
	}
	return nil
}

func isNumber(value any) bool {
	switch value.(type) {
	case nil, float64, json.Number:
		return true
	default:
		return false
	}
}
