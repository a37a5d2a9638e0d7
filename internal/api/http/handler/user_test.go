package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/mocks"
	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/dtroode/gophtasks-server/internal/testutil"
)

func TestNewUser_MissingCollaborators(t *testing.T) {
	_, err := NewUser(nil, testutil.MakeNoopLogger())
	assert.True(t, apierrors.HasCode(err, apierrors.CodeInvalidArgument))

	_, err = NewUser(mocks.NewUserService(t), nil)
	assert.True(t, apierrors.HasCode(err, apierrors.CodeInvalidArgument))
}

func TestUser_AddUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.UserService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"username":"alice"}`,
			setup: func(s *mocks.UserService) {
				s.On("AddUser", mock.Anything, "alice").Return(model.User{ID: "3", Name: "alice", Token: "tok"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"token":"tok"}`,
		},
		{
			name: "duplicate",
			body: `{"username":"alice"}`,
			setup: func(s *mocks.UserService) {
				s.On("AddUser", mock.Anything, "alice").Return(model.User{}, apierrors.NewErrInvalidBody("alice"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":3,"error":"Invalid body alice"}`,
		},
		{
			name:       "malformed JSON",
			body:       `{"username":`,
			setup:      func(*mocks.UserService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":3,"error":"Invalid body malformed JSON"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewUserService(t)
			tt.setup(svc)

			h, err := NewUser(svc, testutil.MakeNoopLogger())
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			h.AddUser(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
