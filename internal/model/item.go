// File: internal/model/item.go
package model

import "time"

// Item 農場模式下的掉落物，totalAmount 為所有回報的累計數量
type Item struct {
	ID          int       `db:"id" json:"id"`
	ItemName    string    `db:"item_name" json:"itemName"`
	FarmingMode string    `db:"farming_mode" json:"farmingMode"`
	TotalAmount int64     `db:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
