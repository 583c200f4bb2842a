package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/katana-forge/storefront/internal/api/middleware"
)

// CreateTestRequest builds a request with a discard logger and the given
// session id in context, the way the middleware chain would.
func CreateTestRequest(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)
	ctx = context.WithValue(ctx, middleware.SessionKey, sessionID)

	return req.WithContext(ctx)
}
