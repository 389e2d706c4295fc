// File: internal/dto/item_requests.go
package dto

// CreateItemRequest 路徑參數繫結：POST /create-item/:farmingMode/:itemName
// swagger:model dto.CreateItemRequest
type CreateItemRequest struct {
	FarmingMode string `param:"farmingMode" validate:"required" example:"mode1"`
	ItemName    string `param:"itemName" validate:"required" example:"Potion"`
}

// GetItemsRequest 路徑參數繫結：GET /get-item/:farmingMode
// swagger:model dto.GetItemsRequest
type GetItemsRequest struct {
	FarmingMode string `param:"farmingMode" validate:"required" example:"mode1"`
}

// GetItemRequest 路徑參數繫結：GET /get-item/:farmingMode/:itemName
// swagger:model dto.GetItemRequest
type GetItemRequest struct {
	FarmingMode string `param:"farmingMode" validate:"required" example:"mode1"`
	ItemName    string `param:"itemName" validate:"required" example:"Potion"`
}
