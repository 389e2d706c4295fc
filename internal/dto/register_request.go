// File: internal/dto/register_request.go
package dto

// RegisterRequest 註冊新使用者的請求格式
// Email 僅要求為字串，不驗證格式（沿用上游行為）
// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	Email    string `json:"email" form:"email" example:"alice@example.com"`
}
