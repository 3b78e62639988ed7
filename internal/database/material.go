package database

import (
	"context"
	"database/sql"

	"brodverk-backend/internal/apperr"
	"brodverk-backend/internal/models"
)

type MaterialQueries struct {
	db *sql.DB
}

func NewMaterialQueries(db *sql.DB) *MaterialQueries {
	return &MaterialQueries{db: db}
}

const materialColumns = "id, name, unit, stock_quantity, reorder_level, cost_per_unit, created_at, updated_at"

func scanMaterial(row rowScanner) (*models.RawMaterial, error) {
	material := &models.RawMaterial{}
	err := row.Scan(
		&material.ID, &material.Name, &material.Unit,
		&material.StockQuantity, &material.ReorderLevel, &material.CostPerUnit,
		&material.CreatedAt, &material.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.CodeNotFound, "raw material not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to read raw material")
	}
	return material, nil
}

func (q *MaterialQueries) CreateMaterial(ctx context.Context, req *models.RawMaterialRequest) (*models.RawMaterial, error) {
	query := `
		INSERT INTO raw_materials (name, unit, stock_quantity, reorder_level, cost_per_unit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + materialColumns
	return scanMaterial(q.db.QueryRowContext(ctx, query,
		req.Name, req.Unit, req.StockQuantity, req.ReorderLevel, req.CostPerUnit))
}

func (q *MaterialQueries) GetMaterialByID(ctx context.Context, id int) (*models.RawMaterial, error) {
	query := `SELECT ` + materialColumns + ` FROM raw_materials WHERE id = $1`
	return scanMaterial(q.db.QueryRowContext(ctx, query, id))
}

func (q *MaterialQueries) UpdateMaterial(ctx context.Context, id int, req *models.RawMaterialRequest) (*models.RawMaterial, error) {
	query := `
		UPDATE raw_materials
		SET name = $2, unit = $3, stock_quantity = $4, reorder_level = $5, cost_per_unit = $6
		WHERE id = $1
		RETURNING ` + materialColumns
	return scanMaterial(q.db.QueryRowContext(ctx, query,
		id, req.Name, req.Unit, req.StockQuantity, req.ReorderLevel, req.CostPerUnit))
}

func (q *MaterialQueries) DeleteMaterial(ctx context.Context, id int) error {
	result, err := q.db.ExecContext(ctx, `DELETE FROM raw_materials WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete raw material")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete raw material")
	}
	if affected == 0 {
		return apperr.New(apperr.CodeNotFound, "raw material not found")
	}
	return nil
}

func (q *MaterialQueries) ListMaterials(ctx context.Context, page, limit int) (*models.RawMaterialListResponse, error) {
	var total int
	if err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM raw_materials`).Scan(&total); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to count raw materials")
	}

	query := `SELECT ` + materialColumns + ` FROM raw_materials ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := q.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to list raw materials")
	}
	defer rows.Close()

	materials := []models.RawMaterial{}
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, *material)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to list raw materials")
	}

	return &models.RawMaterialListResponse{
		Materials: materials,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}, nil
}
