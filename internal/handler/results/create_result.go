// File: internal/handler/results/create_result.go
package results

import (
	"fmt"
	"net/http"
	"time"

	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/model"
	"farming-stats/internal/store"

	"github.com/labstack/echo/v4"
)

// timeNow 測試可覆寫此變數
var timeNow = time.Now

// resultDate 上游回報用的日期格式 M.D.YYYY (UTC)
func resultDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d.%d.%d", int(t.Month()), t.Day(), t.Year())
}

// CreateResultHandler 建立回報並累加 Item 總數
// 呼叫端（自動化工具）已確認 Item 存在，此路由不做參照檢查
// @Summary     Create a result
// @Description 寫入一筆掉落回報並以原子加總更新 Item 的 total_amount
// @Tags        results
// @Produce     json
// @Param       userID   path string  true "回報者識別"
// @Param       itemName path string  true "Item 名稱"
// @Param       amount   path integer true "掉落數量"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /create-result/{userID}/{itemName}/{amount} [post]
func CreateResultHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateResultRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper value for the item amount."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for parameters."})
		}

		ctx := c.Request().Context()
		result := &model.Result{
			UserID:   req.UserID,
			ItemName: req.ItemName,
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
