package store

import (
	"context"
	"errors"
	"testing"

	"farming-stats/internal/database"
	"farming-stats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestCreateResult(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{vals: []any{11}}
	}}
	r, err := CreateResult(ctx, db, &model.Result{
		UserID:   "alice",
		ItemName: "Potion",
		Amount:   3,
		Date:     "5.1.2026",
	})
	require.NoError(t, err)
	require.Equal(t, 11, r.ID)

	db = &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: errors.New("insert")}
	}}
	_, err = CreateResult(ctx, db, &model.Result{UserID: "alice"})
	require.Error(t, err)
}

func TestGetResultsByUser(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{rows: []fakeRow{
			{vals: []any{1, "alice", "Potion", "GA", int64(2), "5.1.2026"}},
			{vals: []any{2, "alice", "Elixir", "GA", int64(1), "5.2.2026"}},
		}}, nil
	}}
	rs, err := GetResultsByUser(ctx, db, "alice")
	require.NoError(t, err)
	require.Len(t, rs, 2)
	require.Equal(t, "Potion", rs[0].ItemName)
	require.Equal(t, int64(1), rs[1].Amount)

	db = &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{}, nil
	}}
	rs, err = GetResultsByUser(ctx, db, "ghost")
	require.NoError(t, err)
	require.Empty(t, rs)

	db = &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, errors.New("query")
	}}
	_, err = GetResultsByUser(ctx, db, "alice")
	require.Error(t, err)
}

func TestGetResultsByItem(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{rows: []fakeRow{
			{vals: []any{1, "alice", "Potion", "", int64(2), "5.1.2026"}},
		}}, nil
	}}
	rs, err := GetResultsByItem(ctx, db, "Potion")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Equal(t, "alice", rs[0].UserID)

	db = &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{rows: []fakeRow{{}}, scanErr: errors.New("scan")}, nil
	}}
	_, err = GetResultsByItem(ctx, db, "Potion")
	require.Error(t, err)
}

func TestGetResultsByFarmingMode(t *testing.T) {
	ctx := context.Background()

	var gotSQL string
	db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
		gotSQL = sql
		return &fakeRows{rows: []fakeRow{
			{vals: []any{1, "alice", "Potion", "", int64(2), "5.1.2026"}},
		}}, nil
	}}
	rs, err := GetResultsByFarmingMode(ctx, db, "mode1")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Contains(t, gotSQL, "JOIN items")

	db = &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, errors.New("query")
	}}
	_, err = GetResultsByFarmingMode(ctx, db, "mode1")
	require.Error(t, err)
}
