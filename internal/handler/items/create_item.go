// File: internal/handler/items/create_item.go
package items

import (
	"errors"
	"fmt"
	"net/http"

	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/model"
	"farming-stats/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// CreateItemHandler 建立 Item，若同名 Item 已存在則視為冪等成功
// @Summary     Create an item
// @Description 以 Farming Mode 與名稱建立 Item；已存在時回 200 不重複建立
// @Tags        items
// @Produce     json
// @Param       farmingMode path string true "Farming Mode"
// @Param       itemName    path string true "Item 名稱"
// @Success     201 {object} dto.MessageResponse
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /create-item/{farmingMode}/{itemName} [post]
func CreateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		ctx := c.Request().Context()

		if _, err := store.GetItemByName(ctx, db, req.ItemName); err == nil {
			return c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Item %q already exists.", req.ItemName)})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}

		item := &model.Item{
			ItemName:    req.ItemName,
			FarmingMode: req.FarmingMode,
		}
		if _, err := store.CreateItem(ctx, db, item); err != nil {
			// 併發建立撞上唯一約束時同樣視為已存在
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Item %q already exists.", req.ItemName)})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}

		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: fmt.Sprintf("Successfully created item %q.", req.ItemName)})
	}
}
