// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"farming-stats/internal/cache"
	"farming-stats/internal/dto"
	"farming-stats/internal/middleware"
	"farming-stats/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷 session 並清除 cookie，永遠回 200
// @Summary     登出使用者
// @Description 使目前 session token 失效並使 cookie 過期
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /logout [get]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(middleware.SessionCookieName)
		if err == nil && cookie.Value != "" {
			if err := service.RevokeSession(c.Request().Context(), rdb, cookie.Value); err != nil {
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
			}
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out."})
	}
}
