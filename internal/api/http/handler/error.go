package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
)

type errorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// StatusOf maps an error code to its HTTP status.
func StatusOf(code apierrors.Code) int {
	switch code {
	case apierrors.CodeMissingParameter,
		apierrors.CodeInvalidParameter,
		apierrors.CodeInvalidBody,
		apierrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case apierrors.CodeTaskNotFound:
		return http.StatusNotFound
	case apierrors.CodeUserNotFound,
		apierrors.CodeNotAuthorized,
		apierrors.CodeMissingToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as {code, error}. Errors outside the taxonomy
// become a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:  int(apierrors.CodeUnknown),
			Error: "internal server error",
		})
		return
	}

	writeJSON(w, StatusOf(apiErr.Code), errorResponse{
		Code:  int(apiErr.Code),
		Error: apiErr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NotFound renders unknown routes in the error body shape.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Code:  int(apierrors.CodeUnknown),
		Error: "route not found",
	})
}

// MethodNotAllowed renders known routes called with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Code:  int(apierrors.CodeUnknown),
		Error: "method not allowed",
	})
}
