package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository keeps users in an ordered slice.
type UserRepository struct {
	mu     sync.RWMutex
	users  []model.User
	nextID atomic.Int64
}

// NewUserRepository creates a repository holding a copy of seed.
// Ids of new users continue from len(seed)+1.
func NewUserRepository(seed []model.User) *UserRepository {
	r := &UserRepository{users: slices.Clone(seed)}
	r.nextID.Store(int64(len(seed) + 1))
	return r
}

func (r *UserRepository) AddUser(_ context.Context, username string) (model.User, error) {
	if username == "" {
		return model.User{}, apierrors.NewErrInvalidBody("username is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.users, func(u model.User) bool { return u.Name == username }) {
		return model.User{}, apierrors.NewErrInvalidBody(username)
	}

	user := model.User{
		ID:    strconv.FormatInt(r.nextID.Add(1)-1, 10),
		Name:  username,
		Token: uuid.NewString(),
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *UserRepository) GetUserIDByToken(_ context.Context, token string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := slices.IndexFunc(r.users, func(u model.User) bool { return u.Token == token })
	if idx == -1 {
		return "", apierrors.NewErrUserNotFound()
	}
	return r.users[idx].ID, nil
}
