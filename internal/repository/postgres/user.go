package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/model"
)

const uniqueViolation = "23505"

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) AddUser(ctx context.Context, username string) (model.User, error) {
	if username == "" {
		return model.User{}, apierrors.NewErrInvalidBody("username is required")
	}

	query := `INSERT INTO users (id, name, token)
			  VALUES ($1, $2, $3)
			  RETURNING id, name, token`

	var (
		id   uuid.UUID
		user model.User
	)
	err := r.db.QueryRow(ctx, query, uuid.New(), username, uuid.NewString()).Scan(&id, &user.Name, &user.Token)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, apierrors.NewErrInvalidBody(username)
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id.String()

	return user, nil
}

func (r *UserRepository) GetUserIDByToken(ctx context.Context, token string) (string, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE token = $1`, token).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apierrors.NewErrUserNotFound()
		}
		return "", fmt.Errorf("failed to get user by token: %w", err)
	}

	return id.String(), nil
}
