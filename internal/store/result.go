// File: internal/store/result.go
package store

import (
	"context"
	"fmt"

	"farming-stats/internal/database"
	"farming-stats/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateResult(ctx context.Context, db database.DB, r *model.Result) (*model.Result, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO results (user_id, item_name, platform, amount, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		r.UserID,
		r.ItemName,
		r.Platform,
		r.Amount,
		r.Date,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateResult: %w", err)
	}
	return r, nil
}

func scanResults(rows pgx.Rows, op string) ([]model.Result, error) {
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var r model.Result
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.ItemName,
			&r.Platform,
			&r.Amount,
			&r.Date,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return results, nil
}

func GetResultsByUser(ctx context.Context, db database.DB, userID string) ([]model.Result, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, item_name, platform, amount, date, created_at
		 FROM results WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetResultsByUser: %w", err)
	}
	return scanResults(rows, "GetResultsByUser")
}

func GetResultsByItem(ctx context.Context, db database.DB, itemName string) ([]model.Result, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, item_name, platform, amount, date, created_at
		 FROM results WHERE item_name = $1
		 ORDER BY id`,
		itemName,
	)
	if err != nil {
		return nil, fmt.Errorf("GetResultsByItem: %w", err)
	}
	return scanResults(rows, "GetResultsByItem")
}

// GetResultsByFarmingMode 透過 items 關聯查出同一 Farming Mode 下的所有回報
func GetResultsByFarmingMode(ctx context.Context, db database.DB, farmingMode string) ([]model.Result, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.user_id, r.item_name, r.platform, r.amount, r.date, r.created_at
		 FROM results r
		 JOIN items i ON i.item_name = r.item_name
		 WHERE i.farming_mode = $1
		 ORDER BY r.id`,
		farmingMode,
	)
	if err != nil {
		return nil, fmt.Errorf("GetResultsByFarmingMode: %w", err)
	}
	return scanResults(rows, "GetResultsByFarmingMode")
}
