package database

import (
	"context"
	"database/sql"
	"strconv"

	"brodverk-backend/internal/apperr"
	"brodverk-backend/internal/discount"
	"brodverk-backend/internal/models"
)

type ProductQueries struct {
	db *sql.DB
}

func NewProductQueries(db *sql.DB) *ProductQueries {
	return &ProductQueries{db: db}
}

func (q *ProductQueries) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	query := `
		INSERT INTO products (name, description, category, price, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, category, price, active, created_at, updated_at
	`
	product := &models.Product{}
	err := q.db.QueryRowContext(ctx, query, req.Name, req.Description, req.Category, req.Price, req.Active).Scan(
		&product.ID, &product.Name, &product.Description, &product.Category,
		&product.Price, &product.Active, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to create product")
	}
	return product, nil
}

func (q *ProductQueries) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, name, description, category, price, active, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	product := &models.Product{}
	err := q.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Category,
		&product.Price, &product.Active, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.CodeNotFound, "product not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to get product")
	}
	return product, nil
}

func (q *ProductQueries) UpdateProduct(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, price = $5, active = $6
		WHERE id = $1
		RETURNING id, name, description, category, price, active, created_at, updated_at
	`
	product := &models.Product{}
	err := q.db.QueryRowContext(ctx, query, id, req.Name, req.Description, req.Category, req.Price, req.Active).Scan(
		&product.ID, &product.Name, &product.Description, &product.Category,
		&product.Price, &product.Active, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.CodeNotFound, "product not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to update product")
	}
	return product, nil
}

func (q *ProductQueries) DeleteProduct(ctx context.Context, id int64) error {
	result, err := q.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete product")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete product")
	}
	if affected == 0 {
		return apperr.New(apperr.CodeNotFound, "product not found")
	}
	return nil
}

func (q *ProductQueries) ListProducts(ctx context.Context, page, limit int, activeFilter *bool) (*models.ProductListResponse, error) {
	where := ""
	args := []any{}
	if activeFilter != nil {
		where = "WHERE active = $1"
		args = append(args, *activeFilter)
	}

	var total int
	if err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products "+where, args...).Scan(&total); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to count products")
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query := `
		SELECT id, name, description, category, price, active, created_at, updated_at
		FROM products ` + where + `
		ORDER BY name
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to list products")
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Category,
			&product.Price, &product.Active, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to scan product")
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to list products")
	}

	return &models.ProductListResponse{
		Products: products,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// SearchProducts resolves free-text input for the discount screens' product
// multiselect. Only active products are offered.
func (q *ProductQueries) SearchProducts(ctx context.Context, text string, limit int) ([]models.ProductSearchResult, error) {
	query := `
		SELECT id, name
		FROM products
		WHERE active = true AND name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`
	rows, err := q.db.QueryContext(ctx, query, text, limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to search products")
	}
	defer rows.Close()

	results := []models.ProductSearchResult{}
	for rows.Next() {
		var result models.ProductSearchResult
		if err := rows.Scan(&result.Product, &result.Name); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to scan search result")
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to search products")
	}
	return results, nil
}

// Search adapts the query layer to the discount engine's ProductSearcher
// port, yielding ready-made multiselect options.
func (q *ProductQueries) Search(ctx context.Context, text string) ([]discount.ProductOption, error) {
	results, err := q.SearchProducts(ctx, text, 20)
	if err != nil {
		return nil, err
	}
	options := make([]discount.ProductOption, 0, len(results))
	for _, r := range results {
		options = append(options, discount.ProductOption{Label: r.Name, Value: r.Product})
	}
	return options, nil
}
