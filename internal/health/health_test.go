package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metaPinger struct{}

func (metaPinger) Ping(context.Context) (interface{}, error) {
	return map[string]int{"open": 2}, nil
}

func (metaPinger) Name() string {
	return "sessions"
}

func TestHandler(t *testing.T) {
	tt := []struct {
		name   string
		pinger Pinger
		code   int
		err    string
	}{
		{
			name:   "ok",
			pinger: PingFunc("postgres", func(context.Context) error { return nil }),
			code:   http.StatusOK,
		},
		{
			name:   "fail",
			pinger: PingFunc("postgres", func(context.Context) error { return errors.New("connection refused") }),
			code:   http.StatusServiceUnavailable,
			err:    "connection refused",
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Handler(time.Second, tc.pinger, metaPinger{})(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.code, w.Code)

			var status Status
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			assert.Equal(t, "dev", status.Version)
			require.Len(t, status.Subjects, 2)
			assert.Equal(t, tc.err, status.Subjects["postgres"].Error)
			assert.NotNil(t, status.Subjects["sessions"].Meta)
		})
	}
}

func TestCheck_Timeout(t *testing.T) {
	slow := PingFunc("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	status := Check(context.Background(), 10*time.Millisecond, slow)
	require.False(t, status.Healthy())
	assert.Equal(t, context.DeadlineExceeded.Error(), status.Subjects["slow"].Error)
}

func TestGetVersion(t *testing.T) {
	require.Equal(t, "dev-undefined", GetVersion())
}
