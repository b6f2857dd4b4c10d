package mwguards

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/StevenGabule/portfolio/pkg/endpoint"
)

func normaliseData(data ...map[string]any) map[string]any {
	result := map[string]any{}

	for _, d := range data {
		for k, v := range d {
			result[k] = v
		}
	}

	return result
}

func normaliseMessages(message, logMessage string) (string, string) {
	message = strings.TrimSpace(message)

	if strings.TrimSpace(logMessage) == "" {
		logMessage = message
	}

	return message, logMessage
}

func RateLimitedError(message, logMessage string, data ...map[string]any) *endpoint.ApiError {
	message, logMessage = normaliseMessages(message, logMessage)

	d := normaliseData(data...)
	slog.Warn(logMessage, "data", d)

	return &endpoint.ApiError{
		Message: message,
		Status:  http.StatusTooManyRequests,
		Data:    d,
		Err:     errors.New(logMessage),
	}
}

func DuplicateSubmissionError(message, logMessage string, data ...map[string]any) *endpoint.ApiError {
	message, logMessage = normaliseMessages(message, logMessage)

	d := normaliseData(data...)
	slog.Warn(logMessage, "data", d)

	return &endpoint.ApiError{
		Message: message,
		Status:  http.StatusConflict,
		Data:    d,
		Err:     errors.New(logMessage),
	}
}

func InvalidRequestError(message, logMessage string, data ...map[string]any) *endpoint.ApiError {
	message, logMessage = normaliseMessages(message, logMessage)

	d := normaliseData(data...)
	slog.Warn(logMessage, "data", d)

	return &endpoint.ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Data:    d,
		Err:     errors.New(logMessage),
	}
}
