package apierrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		wantCode Code
		wantMsg  string
	}{
		{"missing parameter", NewErrMissingParameter("taskId"), CodeMissingParameter, "Missing parameter taskId"},
		{"invalid parameter", NewErrInvalidParameter("taskId"), CodeInvalidParameter, "Invalid parameter taskId"},
		{"invalid body", NewErrInvalidBody("new Task"), CodeInvalidBody, "Invalid body new Task"},
		{"task not found", NewErrTaskNotFound("42"), CodeTaskNotFound, "Task 42 not found"},
		{"user not found", NewErrUserNotFound(), CodeUserNotFound, "User not found"},
		{"not authorized", NewErrNotAuthorized("User 1", "Task 2"), CodeNotAuthorized, "User 1 has no access to Task 2"},
		{"missing token", NewErrMissingToken(), CodeMissingToken, "Missing token"},
		{"invalid argument", NewErrInvalidArgument("taskStore"), CodeInvalidArgument, "Invalid argument taskStore"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestCodes_AreStable(t *testing.T) {
	assert.Equal(t, 1, int(CodeMissingParameter))
	assert.Equal(t, 4, int(CodeTaskNotFound))
	assert.Equal(t, 7, int(CodeMissingToken))
	assert.Equal(t, 8, int(CodeInvalidArgument))
	assert.Equal(t, "NOT_AUTHORIZED", CodeNotAuthorized.String())
	assert.Equal(t, "UNKNOWN", Code(99).String())
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("failed to get task: %w", NewErrTaskNotFound("7"))

	code, ok := CodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeTaskNotFound, code)
	assert.True(t, HasCode(wrapped, CodeTaskNotFound))
	assert.True(t, errors.Is(wrapped, NewErrTaskNotFound("other")))
	assert.False(t, errors.Is(wrapped, NewErrUserNotFound()))

	code, ok = CodeOf(errors.New("boom"))
	assert.False(t, ok)
	assert.Equal(t, CodeUnknown, code)
}
