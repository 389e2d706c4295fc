// File: internal/handler/items/get_items_test.go
package items

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"farming-stats/internal/database"
	"farming-stats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// itemRows 依序回放多列 Item
type itemRows struct {
	items []model.Item
	idx   int
}

func (f *itemRows) Close()                                       {}
func (f *itemRows) Err() error                                   { return nil }
func (f *itemRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *itemRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *itemRows) Next() bool                                   { return f.idx < len(f.items) }
func (f *itemRows) Values() ([]any, error)                       { return nil, nil }
func (f *itemRows) RawValues() [][]byte                          { return nil }
func (f *itemRows) Conn() *pgx.Conn                              { return nil }

func (f *itemRows) Scan(dest ...any) error {
	it := f.items[f.idx]
	f.idx++
	return itemRow{it: it}.Scan(dest...)
}

func TestGetItemsHandler(t *testing.T) {

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newItemCtx(e, nil, nil)
	h := GetItemsHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newItemCtx(e, []string{"farmingMode"}, []string{""})
	h = GetItemsHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// query error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newItemCtx(e, []string{"farmingMode"}, []string{"mode1"})
	h = GetItemsHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, errors.New("boom")
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// no items yet
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newItemCtx(e, []string{"farmingMode"}, []string{"mode1"})
	h = GetItemsHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &itemRows{}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `No Items have been created for Farming Mode \"mode1\" yet.`)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newItemCtx(e, []string{"farmingMode"}, []string{"mode1"})
	h = GetItemsHandler(&database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &itemRows{items: []model.Item{
			{ID: 1, ItemName: "Elixir", FarmingMode: "mode1", TotalAmount: 2},
			{ID: 2, ItemName: "Potion", FarmingMode: "mode1", TotalAmount: 5},
		}}, nil
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"itemName":"Elixir"`)
	require.Contains(t, rec.Body.String(), `"totalAmount":5`)
}
