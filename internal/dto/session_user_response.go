// File: internal/dto/session_user_response.go
package dto

// SessionUserResponse 目前登入者的序列化身分（不含密碼哈希）
// swagger:model dto.SessionUserResponse
type SessionUserResponse struct {
	Username string `json:"username" example:"alice"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}
