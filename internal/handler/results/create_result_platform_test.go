// File: internal/handler/results/create_result_platform_test.go
package results

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"farming-stats/internal/database"
	"farming-stats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCreateResultPlatformHandler(t *testing.T) {
	restoreGlobals(t)
	timeNow = func() time.Time { return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC) }

	params := []string{"userID", "itemName", "platform", "amount"}

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newResultCtx(e, nil, nil)
	h := CreateResultPlatformHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newResultCtx(e, params, []string{"alice", "Potion", "GA", "0"})
	h = CreateResultPlatformHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown user
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, params, []string{"ghost", "Potion", "GA", "3"})
	h = CreateResultPlatformHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return userRow{err: pgx.ErrNoRows}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "User does not exist.")

	// user lookup error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, params, []string{"alice", "Potion", "GA", "3"})
	h = CreateResultPlatformHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return userRow{err: errors.New("boom")}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// insert error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, params, []string{"alice", "Potion", "GA", "3"})
	h = CreateResultPlatformHandler(&database.FakeDB{QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
		if len(args) == 1 {
			return userRow{u: model.User{ID: 1, Username: "alice"}}
		}
		return insertRow{err: errors.New("boom")}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success, the platform travels with the insert
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, params, []string{"alice", "Potion", "GA", "3"})
	h = CreateResultPlatformHandler(&database.FakeDB{
		QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			if len(args) == 1 {
				return userRow{u: model.User{ID: 1, Username: "alice"}}
			}
			require.Equal(t, "GA", args[2])
			require.Equal(t, "8.30.2026", args[4])
			return insertRow{id: 1}
		},
		ExecFn: okExec,
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Successfully sent the result and updated the total amount.")
}
