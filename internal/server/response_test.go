package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/hermes/internal/entities"
	"github.com/Decentr-net/hermes/internal/session"
	"github.com/Decentr-net/hermes/internal/storage"
)

func Test_writeServiceError(t *testing.T) {
	tt := []struct {
		name     string
		mutation bool
		err      error

		code int
	}{
		{name: "unknown id in store", mutation: true, err: entities.ErrNotFound, code: http.StatusNoContent},
		{name: "unknown id accessor", err: entities.ErrNotFound, code: http.StatusNotFound},
		{name: "missing in source on mutation", mutation: true, err: fmt.Errorf("failed to get posts: %w", storage.ErrNotFound), code: http.StatusNotFound},
		{name: "missing in source", err: storage.ErrNotFound, code: http.StatusNotFound},
		{name: "empty", mutation: true, err: entities.ErrEmpty, code: http.StatusBadRequest},
		{name: "follow self", mutation: true, err: session.ErrFollowSelf, code: http.StatusBadRequest},
		{name: "unmounted", err: session.ErrUnmounted, code: http.StatusConflict},
		{name: "cancelled", err: fmt.Errorf("failed to load feed: %w", context.Canceled), code: http.StatusConflict},
		{name: "timeout", err: fmt.Errorf("failed to load feed: %w", context.DeadlineExceeded), code: http.StatusGatewayTimeout},
		{name: "unauthorized", mutation: true, err: session.ErrUnauthorized, code: http.StatusUnauthorized},
		{name: "internal", err: errTest, code: http.StatusInternalServerError},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeServiceError(context.Background(), w, tc.mutation, tc.err)

			require.Equal(t, tc.code, w.Code)
		})
	}
}
