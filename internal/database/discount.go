package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	"brodverk-backend/internal/apperr"
	"brodverk-backend/internal/discount"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// DiscountStore persists discounts. The variant-specific fields live in a
// JSONB payload column; coupon_type, code and status are lifted into columns
// for lookups. It satisfies the discount engine's Store port.
type DiscountStore struct {
	db *sql.DB
}

func NewDiscountStore(db *sql.DB) *DiscountStore {
	return &DiscountStore{db: db}
}

func (s *DiscountStore) Fetch(ctx context.Context, id string) (*discount.Record, error) {
	query := `
		SELECT id, coupon_type, code, status, payload
		FROM discounts
		WHERE id = $1
	`
	return s.scanRecord(s.db.QueryRowContext(ctx, query, id))
}

func (s *DiscountStore) Create(ctx context.Context, payload discount.Payload) (*discount.Record, error) {
	id := uuid.NewString()
	couponType, code, status, body, err := payloadColumns(payload)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO discounts (id, coupon_type, code, status, payload)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query, id, couponType, code, status, body); err != nil {
		return nil, discountWriteError(err)
	}
	return s.Fetch(ctx, id)
}

func (s *DiscountStore) Update(ctx context.Context, id string, payload discount.Payload) (*discount.Record, error) {
	couponType, code, status, body, err := payloadColumns(payload)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE discounts
		SET coupon_type = $2, code = $3, status = $4, payload = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id, couponType, code, status, body)
	if err != nil {
		return nil, discountWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to update discount")
	}
	if affected == 0 {
		return nil, apperr.New(apperr.CodeNotFound, "discount not found")
	}
	return s.Fetch(ctx, id)
}

func (s *DiscountStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete discount")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete discount")
	}
	if affected == 0 {
		return apperr.New(apperr.CodeNotFound, "discount not found")
	}
	return nil
}

// List returns a page of discounts, optionally filtered by status and
// coupon type.
func (s *DiscountStore) List(ctx context.Context, page, limit int, status, couponType string) ([]discount.Record, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if status != "" {
		args = append(args, status)
		where += " AND status = $1"
	}
	if couponType != "" {
		args = append(args, couponType)
		where += " AND coupon_type = $" + strconv.Itoa(len(args))
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM discounts "+where, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Wrap(err, apperr.CodeDatabase, "failed to count discounts")
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query := `
		SELECT id, coupon_type, code, status, payload
		FROM discounts ` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperr.Wrap(err, apperr.CodeDatabase, "failed to list discounts")
	}
	defer rows.Close()

	records := []discount.Record{}
	for rows.Next() {
		record, err := s.scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Wrap(err, apperr.CodeDatabase, "failed to list discounts")
	}
	return records, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *DiscountStore) scanRecord(row rowScanner) (*discount.Record, error) {
	var (
		id, couponType, code, status string
		body                         []byte
	)
	if err := row.Scan(&id, &couponType, &code, &status, &body); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.CodeNotFound, "discount not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to read discount")
	}

	record := &discount.Record{}
	if err := json.Unmarshal(body, record); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "corrupt discount payload")
	}
	// Columns win over whatever the payload blob carries.
	record.ID = id
	record.CouponType = couponType
	record.Code = code
	record.Status = status
	return record, nil
}

// payloadColumns lifts the indexed columns out of a submit payload and
// renders the payload itself as the JSONB body.
func payloadColumns(payload discount.Payload) (couponType, code, status string, body []byte, err error) {
	couponType, _ = payload[discount.CouponTypeKey].(string)
	status, _ = payload[discount.StatusKey].(string)
	if code, _ = payload[string(discount.FieldCode)].(string); code != "" {
		code = strings.ToUpper(strings.TrimSpace(code))
		payload[string(discount.FieldCode)] = code
	}
	body, err = json.Marshal(payload)
	if err != nil {
		err = apperr.Wrap(err, apperr.CodeInternal, "failed to encode discount payload")
	}
	return couponType, code, status, body, err
}

func discountWriteError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
		return apperr.New(apperr.CodeAlreadyExists, "discount code already exists").
			WithField("code", "Code has already been taken")
	}
	return apperr.Wrap(err, apperr.CodeDatabase, "failed to write discount")
}
