// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"farming-stats/internal/cache"
	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/middleware"
	"farming-stats/internal/service"
	"farming-stats/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Username/Password 驗證並建立 session
// @Summary     登入使用者
// @Description 驗證帳號密碼，成功後以 HttpOnly cookie 發放 session token
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB, rdb cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for username or password."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for username or password."})
		}

		ctx := c.Request().Context()

		// 查無此人與密碼錯誤回應相同內容，避免帳號枚舉
		user, err := store.GetUserByName(ctx, db, req.Username)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}
		authUser, err := service.AuthenticateUser(ctx, *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		token, err := service.EstablishSession(ctx, rdb, *authUser, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to establish session"})
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully authenticated user."})
	}
}
