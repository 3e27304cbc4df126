// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/cohort-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, params ListUsersParams) ([]User, error)
	ApplyUpdate(ctx context.Context, id int64, set *UpdateSet) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	IncrementTokenVersion(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `
	id, email, password_hash, role, cohort_id, first_name, last_name,
	username, bio, github_url, mobile, token_version, created_at, updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			email, password_hash, role, cohort_id, first_name, last_name,
			username, bio, github_url, mobile
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, token_version, created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CohortID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.Bio,
		user.GithubURL,
		user.Mobile,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.FirstName != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("first_name = $%d", argIdx),
		)
		args = append(args, params.FirstName)
		argIdx++
	}

	if params.LastName != "" {
		conditions = append(conditions, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, params.LastName)
		argIdx++
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// ApplyUpdate builds an UPDATE from the admitted field set only; nothing
// outside the set is touched.
func (r *repository) ApplyUpdate(
	ctx context.Context,
	id int64,
	set *UpdateSet,
) (*User, error) {
	assignments := []string{"updated_at = NOW()"}
	args := []any{id}
	argIdx := 2

	assign := func(column string, value any) {
		assignments = append(
			assignments,
			fmt.Sprintf("%s = $%d", column, argIdx),
		)
		args = append(args, value)
		argIdx++
	}

	if set.Email != nil {
		assign("email", *set.Email)
	}
	if set.Password != nil {
		assign("password_hash", *set.Password)
	}
	if set.Role != nil {
		assign("role", *set.Role)
	}
	if set.CohortID != nil {
		assign("cohort_id", *set.CohortID)
	}
	if set.FirstName != nil {
		assign("first_name", *set.FirstName)
	}
	if set.LastName != nil {
		assign("last_name", *set.LastName)
	}
	if set.Bio != nil {
		assign("bio", *set.Bio)
	}
	if set.GithubURL != nil {
		assign("github_url", *set.GithubURL)
	}
	if set.Mobile != nil {
		assign("mobile", *set.Mobile)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $1
		RETURNING %s`,
		strings.Join(assignments, ", "), userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("update user: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return &user, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id int64,
	passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) IncrementTokenVersion(
	ctx context.Context,
	id int64,
) error {
	query := `
		UPDATE users
		SET token_version = token_version + 1, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("increment token version: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment token version: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("increment token version: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
