// File: internal/handler/items/get_items.go
package items

import (
	"fmt"
	"net/http"

	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/store"

	"github.com/labstack/echo/v4"
)

// GetItemsHandler 取得指定 Farming Mode 下的所有 Item
// @Summary     List items by farming mode
// @Tags        items
// @Produce     json
// @Param       farmingMode path string true "Farming Mode"
// @Success     200 {array}  model.Item
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /get-item/{farmingMode} [get]
func GetItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.GetItemsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		items, err := store.GetItemsByFarmingMode(c.Request().Context(), db, req.FarmingMode)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		if len(items) == 0 {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: fmt.Sprintf("No Items have been created for Farming Mode %q yet.", req.FarmingMode)})
		}
		return c.JSON(http.StatusOK, items)
	}
}
