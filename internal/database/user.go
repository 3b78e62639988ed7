package database

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/lib/pq"

	"brodverk-backend/internal/apperr"
	"brodverk-backend/internal/auth"
	"brodverk-backend/internal/models"
)

type UserQueries struct {
	db *sql.DB
}

func NewUserQueries(db *sql.DB) *UserQueries {
	return &UserQueries{db: db}
}

const userColumns = "id, email, name, password_hash, role, created_at, updated_at"

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Name,
		&user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.CodeNotFound, "user not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to read user")
	}
	return user, nil
}

func userWriteError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
		return apperr.New(apperr.CodeAlreadyExists, "email already registered").
			WithField("email", "Email has already been taken")
	}
	return apperr.Wrap(err, apperr.CodeDatabase, "failed to write user")
}

func (q *UserQueries) CreateUser(ctx context.Context, email, name, password, role string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to hash password")
	}
	query := `
		INSERT INTO users (email, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	user := &models.User{}
	err = q.db.QueryRowContext(ctx, query, email, name, hash, role).Scan(
		&user.ID, &user.Email, &user.Name,
		&user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, userWriteError(err)
	}
	return user, nil
}

func (q *UserQueries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.db.QueryRowContext(ctx, query, email))
}

func (q *UserQueries) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.db.QueryRowContext(ctx, query, id))
}

func (q *UserQueries) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, apperr.Wrap(err, apperr.CodeDatabase, "failed to check email")
	}
	return exists, nil
}

func (q *UserQueries) UpdateUser(ctx context.Context, id int, req *models.EmployeeRequest) (*models.User, error) {
	user, err := q.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash := user.PasswordHash
	if req.Password != "" {
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to hash password")
		}
	}

	query := `
		UPDATE users
		SET email = $2, name = $3, password_hash = $4, role = $5
		WHERE id = $1
		RETURNING ` + userColumns
	updated := &models.User{}
	err = q.db.QueryRowContext(ctx, query, id, req.Email, req.Name, hash, req.Role).Scan(
		&updated.ID, &updated.Email, &updated.Name,
		&updated.PasswordHash, &updated.Role,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		return nil, userWriteError(err)
	}
	return updated, nil
}

func (q *UserQueries) DeleteUser(ctx context.Context, id int) error {
	result, err := q.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete user")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabase, "failed to delete user")
	}
	if affected == 0 {
		return apperr.New(apperr.CodeNotFound, "user not found")
	}
	return nil
}

func (q *UserQueries) ListUsers(ctx context.Context, page, limit int, search string) (*models.UserListResponse, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = ` WHERE email ILIKE $1 OR name ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to count users")
	}

	args = append(args, limit, (page-1)*limit)
	query := `SELECT ` + userColumns + ` FROM users` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabase, "failed to list users")
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return &models.UserListResponse{Users: users, Total: total, Page: page, Limit: limit}, nil
}
