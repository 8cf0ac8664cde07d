package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/face2face/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "face2face"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain      string   `json:"domain"`
	Reason      string   `json:"reason"`
	Message     string   `json:"message"`
	Location    string   `json:"location,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// writeJSON encodes into a pooled buffer first so an encoding failure can
// still produce a clean 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		http.Error(w, `{"apiVersion":"2.0","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: publicMessage(mapped, err),
			Status:  mapped.Status,
			Errors:  errorItems(mapped, err),
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, errors.New("internal server error"))
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrPlayerNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "playerNotFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	case errors.Is(err, usecase.ErrLookupFailed):
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Reason:     "lookupFailed",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}

// publicMessage hides storage and transport detail behind 5xx responses.
func publicMessage(mapped mappedError, err error) string {
	switch mapped.HTTPStatus {
	case http.StatusInternalServerError:
		return "internal server error"
	case http.StatusBadGateway:
		return "failed to retrieve head-to-head data"
	case http.StatusServiceUnavailable:
		return "match data source is temporarily unavailable"
	default:
		return err.Error()
	}
}

func errorItems(mapped mappedError, err error) []googleErrorItem {
	var notFound *usecase.PlayerNotFoundError
	if errors.As(err, &notFound) && len(notFound.Missing) > 0 {
		items := make([]googleErrorItem, 0, len(notFound.Missing))
		for _, name := range notFound.Missing {
			items = append(items, googleErrorItem{
				Domain:      errorDomain,
				Reason:      mapped.Reason,
				Message:     fmt.Sprintf("player %q not found", name),
				Location:    name,
				Suggestions: notFound.Suggestions[name],
			})
		}
		return items
	}

	return []googleErrorItem{{
		Domain:  errorDomain,
		Reason:  mapped.Reason,
		Message: publicMessage(mapped, err),
	}}
}
