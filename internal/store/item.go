// File: internal/store/item.go
package store

import (
	"context"
	"fmt"

	"farming-stats/internal/database"
	"farming-stats/internal/model"
)

func GetItemByName(ctx context.Context, db database.DB, itemName string) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`SELECT id, item_name, farming_mode, total_amount, created_at
		 FROM items WHERE item_name = $1`,
		itemName,
	)
	it := &model.Item{}
	if err := row.Scan(
		&it.ID,
		&it.ItemName,
		&it.FarmingMode,
		&it.TotalAmount,
		&it.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetItemByName: %w", err)
	}
	return it, nil
}

func GetItemByModeAndName(ctx context.Context, db database.DB, farmingMode, itemName string) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`SELECT id, item_name, farming_mode, total_amount, created_at
		 FROM items WHERE farming_mode = $1 AND item_name = $2`,
		farmingMode,
		itemName,
	)
	it := &model.Item{}
	if err := row.Scan(
		&it.ID,
		&it.ItemName,
		&it.FarmingMode,
		&it.TotalAmount,
		&it.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetItemByModeAndName: %w", err)
	}
	return it, nil
}

func GetItemsByFarmingMode(ctx context.Context, db database.DB, farmingMode string) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT id, item_name, farming_mode, total_amount, created_at
		 FROM items WHERE farming_mode = $1
		 ORDER BY item_name`,
		farmingMode,
	)
	if err != nil {
		return nil, fmt.Errorf("GetItemsByFarmingMode: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(
			&it.ID,
			&it.ItemName,
			&it.FarmingMode,
			&it.TotalAmount,
			&it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("GetItemsByFarmingMode: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetItemsByFarmingMode: %w", err)
	}
	return items, nil
}

func CreateItem(ctx context.Context, db database.DB, it *model.Item) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO items (item_name, farming_mode)
		 VALUES ($1, $2)
		 RETURNING id, total_amount, created_at`,
		it.ItemName,
		it.FarmingMode,
	)
	if err := row.Scan(&it.ID, &it.TotalAmount, &it.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateItem: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateItem: %w", err)
	}
	return it, nil
}

// IncrementItemTotal 以單一 UPDATE 累加 total_amount，併發回報下仍精確
func IncrementItemTotal(ctx context.Context, db database.DB, itemName string, amount int64) error {
	_, err := db.Exec(ctx,
		`UPDATE items
		 SET total_amount = total_amount + $1
		 WHERE item_name = $2`,
		amount,
		itemName,
	)
	if err != nil {
		return fmt.Errorf("IncrementItemTotal: %w", err)
	}
	return nil
}
