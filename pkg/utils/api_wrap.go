package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var svcErr *ServiceError

	switch {
	case errors.Is(err, ErrEmptyCity):
		RespondError(c, http.StatusBadRequest, "City name is required")
	case errors.Is(err, ErrUnknownCategory):
		RespondError(c, http.StatusBadRequest, "Unknown category")
	case errors.Is(err, ErrNoActiveSearch):
		RespondError(c, http.StatusBadRequest, "Search for a city first")
	case errors.Is(err, ErrSearchSuperseded):
		RespondError(c, http.StatusConflict, "Superseded by a newer search")
	case errors.Is(err, ErrSearchUnavailable):
		RespondError(c, http.StatusBadGateway, "Search service is unreachable")
	case errors.As(err, &svcErr):
		RespondError(c, http.StatusBadGateway, svcErr.Message)
	case errors.Is(err, ErrMissingFields):
		RespondError(c, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, ErrInvalidEmail):
		RespondError(c, http.StatusBadRequest, "Enter a valid email address")
	case errors.Is(err, ErrWeakPassword):
		RespondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
	case errors.Is(err, ErrPasswordMismatch):
		RespondError(c, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrStoreError):
		log.Printf("Store error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
