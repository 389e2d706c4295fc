// File: internal/handler/results/get_results_test.go
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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// resultRows 依序回放多列 Result
type resultRows struct {
	results []model.Result
	idx     int
}

func (f *resultRows) Close()                                       {}
func (f *resultRows) Err() error                                   { return nil }
func (f *resultRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *resultRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *resultRows) Next() bool                                   { return f.idx < len(f.results) }
func (f *resultRows) Values() ([]any, error)                       { return nil, nil }
func (f *resultRows) RawValues() [][]byte                          { return nil }
func (f *resultRows) Conn() *pgx.Conn                              { return nil }

func (f *resultRows) Scan(dest ...any) error {
	r := f.results[f.idx]
	f.idx++
	*dest[0].(*int) = r.ID
	*dest[1].(*string) = r.UserID
	*dest[2].(*string) = r.ItemName
	*dest[3].(*string) = r.Platform
	*dest[4].(*int64) = r.Amount
	*dest[5].(*string) = r.Date
	*dest[6].(*time.Time) = r.CreatedAt
	return nil
}

func TestGetResultsByUserHandler(t *testing.T) {

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newResultCtx(e, nil, nil)
	h := GetResultsByUserHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newResultCtx(e, []string{"userID"}, []string{""})
	h = GetResultsByUserHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// query error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, []string{"userID"}, []string{"alice"})
	h = GetResultsByUserHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, errors.New("boom")
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// nothing posted yet
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, []string{"userID"}, []string{"alice"})
	h = GetResultsByUserHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &resultRows{}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `No results have been posted yet for this user \"alice\".`)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, []string{"userID"}, []string{"alice"})
	h = GetResultsByUserHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &resultRows{results: []model.Result{
			{ID: 1, UserID: "alice", ItemName: "Potion", Amount: 3, Date: "8.30.2026"},
			{ID: 2, UserID: "alice", ItemName: "Elixir", Amount: 1, Date: "8.30.2026"},
		}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"userID":"alice"`)
	require.Contains(t, rec.Body.String(), `"itemName":"Elixir"`)
	require.Contains(t, rec.Body.String(), `"date":"8.30.2026"`)
}

func TestGetResultsByItemHandler(t *testing.T) {

	// nothing posted yet
	e := echo.New()
	e.Validator = okValidator{}
	ctx, rec := newResultCtx(e, []string{"itemName"}, []string{"Potion"})
	h := GetResultsByItemHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &resultRows{}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `No results have been posted yet for this item \"Potion\".`)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, []string{"itemName"}, []string{"Potion"})
	h = GetResultsByItemHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &resultRows{results: []model.Result{
			{ID: 1, UserID: "alice", ItemName: "Potion", Platform: "GA", Amount: 3, Date: "8.30.2026"},
		}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"platform":"GA"`)
}

func TestGetResultsByModeHandler(t *testing.T) {

	// nothing posted yet
	e := echo.New()
	e.Validator = okValidator{}
	ctx, rec := newResultCtx(e, []string{"farmingMode"}, []string{"mode1"})
	h := GetResultsByModeHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &resultRows{}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `No results have been posted yet for the Farming Mode \"mode1\".`)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newResultCtx(e, []string{"farmingMode"}, []string{"mode1"})
	h = GetResultsByModeHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &resultRows{results: []model.Result{
			{ID: 1, UserID: "bob", ItemName: "Potion", Amount: 2, Date: "8.30.2026"},
		}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"userID":"bob"`)
}
