// File: internal/handler/auth/user.go
package auth

import (
	"errors"
	"net/http"

	"farming-stats/internal/cache"
	"farming-stats/internal/dto"
	"farming-stats/internal/middleware"
	"farming-stats/internal/service"

	"github.com/labstack/echo/v4"
)

// UserHandler 回傳目前登入者的身分
// 未登入時沿用上游的寬鬆行為：回 200 空內容，不視為錯誤
// @Summary     取得目前登入者
// @Description 以 session cookie 解析身分；未登入回 200 空回應
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.SessionUserResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /user [get]
func UserHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := middleware.SessionFromRequest(c, rdb)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				return c.NoContent(http.StatusOK)
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		return c.JSON(http.StatusOK, dto.SessionUserResponse{
			Username: data.Username,
			IsAdmin:  data.IsAdmin,
		})
	}
}
