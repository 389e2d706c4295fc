// File: internal/handler/items/get_item.go
package items

import (
	"errors"
	"fmt"
	"net/http"

	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetItemHandler 取得單一 Item
// @Summary     Get a single item
// @Tags        items
// @Produce     json
// @Param       farmingMode path string true "Farming Mode"
// @Param       itemName    path string true "Item 名稱"
// @Success     200 {object} model.Item
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /get-item/{farmingMode}/{itemName} [get]
func GetItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.GetItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		item, err := store.GetItemByModeAndName(c.Request().Context(), db, req.FarmingMode, req.ItemName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: fmt.Sprintf("Item %q does not exist for Farming Mode %q.", req.ItemName, req.FarmingMode)})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		return c.JSON(http.StatusOK, item)
	}
}
