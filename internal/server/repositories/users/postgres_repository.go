package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, login, name, password_hash, telegram_id, created_at`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, login, name, password_hash)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	created := *user
	created.ID = uuid.NewString()
	created.ExternalID = nil

	err := r.db.QueryRowContext(ctx, query,
		created.ID, created.Login, created.Name, created.PasswordHash).Scan(&created.CreatedAt)

	if err != nil {
		return nil, mapError(err)
	}

	return &created, nil
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE login = $1
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, login))
}

func (r *PostgresRepository) GetUserByExternalID(ctx context.Context, externalID int64) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE telegram_id = $1
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, externalID))
}

func (r *PostgresRepository) SetExternalID(ctx context.Context, login string, externalID *int64) (*models.User, error) {
	query :=
		`UPDATE users SET telegram_id = $2
		 WHERE login = $1
		 RETURNING ` + userColumns + `
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, login, nullInt64(externalID)))
}

func (r *PostgresRepository) Update(ctx context.Context, login, name, passwordHash string) (*models.User, error) {
	query :=
		`UPDATE users SET name = $2, password_hash = $3
		 WHERE login = $1
		 RETURNING ` + userColumns + `
		 `

	return scanUser(r.db.QueryRowContext(ctx, query, login, name, passwordHash))
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var externalID sql.NullInt64

	err := row.Scan(&user.ID, &user.Login, &user.Name, &user.PasswordHash, &externalID, &user.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	if externalID.Valid {
		id := externalID.Int64
		user.ExternalID = &id
	}

	return user, nil
}

// mapError turns driver errors into repository sentinels.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, pgErr.ConstraintName)
	}

	return fmt.Errorf("db error: %w", err)
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
