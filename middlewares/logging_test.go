package middlewares_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/internal"
	"github.com/dmitrymomot/msgfmt/middlewares"
	"github.com/dmitrymomot/msgfmt/pkg/logger"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    internal.HandlerFunc
		wantStatus int
		wantLevel  string
		wantError  bool
	}{
		{
			name:       "success logs at info",
			handler:    ok,
			wantStatus: http.StatusOK,
			wantLevel:  "INFO",
		},
		{
			name: "client error logs at warn",
			handler: func(c internal.Context) error {
				return internal.ErrBadRequest("bad pattern")
			},
			wantStatus: http.StatusBadRequest,
			wantLevel:  "WARN",
			wantError:  true,
		},
		{
			name: "unexpected error logs at error",
			handler: func(c internal.Context) error {
				return errors.New("boom")
			},
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "ERROR",
			wantError:  true,
		},
		{
			name: "written response keeps its status",
			handler: func(c internal.Context) error {
				return c.JSON(http.StatusCreated, map[string]string{"ok": "yes"})
			},
			wantStatus: http.StatusCreated,
			wantLevel:  "INFO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log, err := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := serve(t, req, []internal.Middleware{middlewares.RequestLogger()}, tt.handler,
				internal.WithLogger(log, "http"),
			)
			require.Equal(t, tt.wantStatus, w.Code)

			entry := findLogEntry(t, &buf, "request completed")
			require.Equal(t, tt.wantLevel, entry["level"])
			require.Equal(t, "http", entry["component"])
			require.Equal(t, http.MethodGet, entry["method"])
			require.Equal(t, "/", entry["path"])
			require.InDelta(t, tt.wantStatus, entry["status"], 0)
			require.Contains(t, entry, "duration")
			if tt.wantError {
				require.Contains(t, entry, "error")
			} else {
				require.NotContains(t, entry, "error")
			}
		})
	}
}

func findLogEntry(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		if entry["msg"] == msg {
			return entry
		}
	}
	t.Fatalf("log entry %q not found", msg)
	return nil
}
