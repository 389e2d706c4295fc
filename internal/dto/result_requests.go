// File: internal/dto/result_requests.go
package dto

// CreateResultRequest 路徑參數繫結：POST /create-result/:userID/:itemName/:amount
// Amount 為 int64，非數值路徑段在 Bind 階段即失敗
// swagger:model dto.CreateResultRequest
type CreateResultRequest struct {
	UserID   string `param:"userID" validate:"required" example:"alice"`
	ItemName string `param:"itemName" validate:"required" example:"Potion"`
	Amount   int64  `param:"amount" validate:"required,gt=0" example:"3"`
}

// CreateResultPlatformRequest 路徑參數繫結：
// POST /create-result/:userID/:itemName/:platform/:amount
// swagger:model dto.CreateResultPlatformRequest
type CreateResultPlatformRequest struct {
	UserID   string `param:"userID" validate:"required" example:"alice"`
	ItemName string `param:"itemName" validate:"required" example:"Potion"`
	Platform string `param:"platform" validate:"required" example:"GA"`
	Amount   int64  `param:"amount" validate:"required,gt=0" example:"3"`
}

// GetResultsByUserRequest 路徑參數繫結：GET /get-result/:userID
// swagger:model dto.GetResultsByUserRequest
type GetResultsByUserRequest struct {
	UserID string `param:"userID" validate:"required" example:"alice"`
}

// GetResultsByItemRequest 路徑參數繫結：GET /get-result/item/:itemName
// swagger:model dto.GetResultsByItemRequest
type GetResultsByItemRequest struct {
	ItemName string `param:"itemName" validate:"required" example:"Potion"`
}

// GetResultsByModeRequest 路徑參數繫結：GET /get-result/farmingMode/:farmingMode
// swagger:model dto.GetResultsByModeRequest
type GetResultsByModeRequest struct {
	FarmingMode string `param:"farmingMode" validate:"required" example:"mode1"`
}
