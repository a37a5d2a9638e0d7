package elastic

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type userDocument struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// UserRepository stores users as documents carrying name and token.
type UserRepository struct {
	conn *Connection
}

func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{
		conn: conn,
	}
}

func (r *UserRepository) AddUser(ctx context.Context, username string) (model.User, error) {
	if username == "" {
		return model.User{}, apierrors.NewErrInvalidBody("username is required")
	}

	hits, err := r.conn.lookup(ctx, r.conn.indices.Users, "name", username)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to look up user by name: %w", err)
	}
	if len(hits) > 0 {
		return model.User{}, apierrors.NewErrInvalidBody(username)
	}

	doc := userDocument{
		Name:  username,
		Token: uuid.NewString(),
	}
	res, err := r.conn.perform(ctx, esapi.IndexRequest{
		Index:   r.conn.indices.Users,
		Body:    esutil.NewJSONReader(doc),
		Refresh: refreshTrue,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to add user: %w", err)
	}
	if res.failed() {
		return model.User{}, res.err("add user")
	}

	return model.User{
		ID:    gjson.GetBytes(res.body, "_id").String(),
		Name:  doc.Name,
		Token: doc.Token,
	}, nil
}

func (r *UserRepository) GetUserIDByToken(ctx context.Context, token string) (string, error) {
	hits, err := r.conn.lookup(ctx, r.conn.indices.Users, "token", token)
	if err != nil {
		return "", fmt.Errorf("failed to look up user by token: %w", err)
	}
	if len(hits) == 0 {
		return "", apierrors.NewErrUserNotFound()
	}

	return hits[0].Get("_id").String(), nil
}
