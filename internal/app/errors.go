package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"heritage/api/internal/gateway"
	"heritage/api/internal/resource"
)

// statusClientClosedRequest marks requests abandoned by the client. It only
// reaches logs and metrics.
const statusClientClosedRequest = 499

type DomainError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func domainError(status int, code, message string, details any) *DomainError {
	return &DomainError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

func mapError(err error) (status int, code, message string) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Status, domainErr.Code, domainErr.Message
	}
	var upstreamErr *gateway.UpstreamError
	switch {
	case errors.Is(err, resource.ErrInvalidPath):
		return http.StatusBadRequest, "INVALID_PATH", "Invalid resource path"
	case errors.Is(err, gateway.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "Resource not found"
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, "CLIENT_CLOSED", "Client closed request"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "Upstream knowledge store timed out"
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Upstream knowledge store unavailable"
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "Server error"
}
