// File: internal/handler/results/create_result_platform.go
package results

import (
	"errors"
	"net/http"

	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/model"
	"farming-stats/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// CreateResultPlatformHandler 帶平台標記的回報路由
// 與三段式路由不同，這裡會先確認回報者帳號存在
// @Summary     Create a result with platform
// @Description 確認使用者存在後寫入帶平台標記的回報並更新 Item 總數
// @Tags        results
// @Produce     json
// @Param       userID   path string  true "回報者識別"
// @Param       itemName path string  true "Item 名稱"
// @Param       platform path string  true "平台標記"
// @Param       amount   path integer true "掉落數量"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /create-result/{userID}/{itemName}/{platform}/{amount} [post]
func CreateResultPlatformHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateResultPlatformRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper value for the item amount."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		ctx := c.Request().Context()

		if _, err := store.GetUserByName(ctx, db, req.UserID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "User does not exist."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}

		result := &model.Result{
			UserID:   req.UserID,
			ItemName: req.ItemName,
			Platform: req.Platform,
			Amount:   req.Amount,
			Date:     resultDate(timeNow()),
		}
		if _, err := store.CreateResult(ctx, db, result); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		if err := store.IncrementItemTotal(ctx, db, req.ItemName, req.Amount); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}

		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Successfully sent the result and updated the total amount."})
	}
}
