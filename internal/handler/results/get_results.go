// File: internal/handler/results/get_results.go
package results

import (
	"fmt"
	"net/http"

	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/store"

	"github.com/labstack/echo/v4"
)

// GetResultsByUserHandler 取得指定使用者的所有回報
// @Summary     List results by user
// @Tags        results
// @Produce     json
// @Param       userID path string true "回報者識別"
// @Success     200 {array}  model.Result
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /get-result/{userID} [get]
func GetResultsByUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.GetResultsByUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		rs, err := store.GetResultsByUser(c.Request().Context(), db, req.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		if len(rs) == 0 {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: fmt.Sprintf("No results have been posted yet for this user %q.", req.UserID)})
		}
		return c.JSON(http.StatusOK, rs)
	}
}

// GetResultsByItemHandler 取得指定 Item 的所有回報
// @Summary     List results by item
// @Tags        results
// @Produce     json
// @Param       itemName path string true "Item 名稱"
// @Success     200 {array}  model.Result
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /get-result/item/{itemName} [get]
func GetResultsByItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.GetResultsByItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		rs, err := store.GetResultsByItem(c.Request().Context(), db, req.ItemName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		if len(rs) == 0 {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: fmt.Sprintf("No results have been posted yet for this item %q.", req.ItemName)})
		}
		return c.JSON(http.StatusOK, rs)
	}
}

// GetResultsByModeHandler 取得指定 Farming Mode 下的所有回報
// @Summary     List results by farming mode
// @Tags        results
// @Produce     json
// @Param       farmingMode path string true "Farming Mode"
// @Success     200 {array}  model.Result
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /get-result/farmingMode/{farmingMode} [get]
func GetResultsByModeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.GetResultsByModeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		rs, err := store.GetResultsByFarmingMode(c.Request().Context(), db, req.FarmingMode)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		if len(rs) == 0 {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Message: fmt.Sprintf("No results have been posted yet for the Farming Mode %q.", req.FarmingMode)})
		}
		return c.JSON(http.StatusOK, rs)
	}
}
