package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/notification"
	"github.com/Decentr-net/hermes/internal/service"
	"github.com/Decentr-net/hermes/internal/session"
	"github.com/Decentr-net/hermes/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

// writeOK writes json body with status code.
func writeOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeInternalErrorf(context.Background(), w, "failed to marshal response: %s", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes error with status code.
func writeError(w http.ResponseWriter, status int, message string) {
	data, _ := json.Marshal(Error{Error: message}) // nolint:errchkjson

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeInternalErrorf logs error and writes the internal error response.
func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)

	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeServiceError maps service's error to a response.
// Mutation of an entity missing in a loaded store is a no-op, so it replies with 204.
// Anything missing in the source replies with 404.
func writeServiceError(ctx context.Context, w http.ResponseWriter, mutation bool, err error) {
	switch {
	case errors.Is(err, session.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case mutation && errors.Is(err, entities.ErrNotFound):
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entities.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, entities.ErrEmpty):
		writeError(w, http.StatusBadRequest, "text should not be empty")
	case errors.Is(err, notification.ErrInvalidFilter),
		errors.Is(err, session.ErrInvalidView),
		errors.Is(err, service.ErrInvalidTab),
		errors.Is(err, session.ErrFollowSelf),
		errors.Is(err, errInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrUnmounted), errors.Is(err, context.Canceled):
		writeError(w, http.StatusConflict, "view is unmounted")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "request timeout")
	default:
		writeInternalErrorf(ctx, w, "%s", err.Error())
	}
}

func (s server) decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid body: %s", errInvalidRequest, err.Error())
	}

	if err := s.v.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}

	return nil
}

func token(r *http.Request) string {
	return r.Header.Get(TokenHeader)
}
