package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/logger"
	"github.com/dtroode/gophtasks-server/internal/model"
)

// UserService registers users.
type UserService interface {
	AddUser(ctx context.Context, username string) (model.User, error)
}

// User serves the user registration endpoint.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a User handler. It fails with INVALID_ARGUMENT when a collaborator is missing.
func NewUser(userService UserService, logger *logger.Logger) (*User, error) {
	if userService == nil {
		return nil, apierrors.NewErrInvalidArgument("userService")
	}
	if logger == nil {
		return nil, apierrors.NewErrInvalidArgument("logger")
	}
	return &User{userService: userService, logger: logger}, nil
}

type addUserRequest struct {
	Username string `json:"username"`
}

type addUserResponse struct {
	Token string `json:"token"`
}

// AddUser handles POST /users.
func (h *User) AddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierrors.NewErrInvalidBody("malformed JSON"))
		return
	}

	user, err := h.userService.AddUser(r.Context(), req.Username)
	if err != nil {
		h.logError("failed to add user", err)
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, addUserResponse{Token: user.Token})
}

func (h *User) logError(msg string, err error) {
	if _, ok := apierrors.CodeOf(err); ok {
		return
	}
	h.logger.Error(msg, "error", err)
}
