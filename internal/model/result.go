// File: internal/model/result.go
package model

import "time"

// Result 單次掉落回報，UserID 為回報者的識別字串（沿用上游欄位名）
// Date 為 M.D.YYYY (UTC) 格式字串，與上游回報格式一致
type Result struct {
	ID        int       `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userID"`
	ItemName  string    `db:"item_name" json:"itemName"`
	Platform  string    `db:"platform" json:"platform,omitempty"`
	Amount    int64     `db:"amount" json:"amount"`
	Date      string    `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
