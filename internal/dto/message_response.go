// File: internal/dto/message_response.go
package dto

// MessageResponse 一般性成功訊息
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Successfully created user."`
}
