// File: internal/handler/ping_test.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"farming-stats/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {

	// database unhealthy
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	h := PingHandler(&database.FakeDB{PingFn: func(context.Context) error { return errors.New("down") }})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// healthy
	e = echo.New()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec = httptest.NewRecorder()
	ctx = e.NewContext(req, rec)
	h = PingHandler(&database.FakeDB{PingFn: func(context.Context) error { return nil }})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pong")
}
