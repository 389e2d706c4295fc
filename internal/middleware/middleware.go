package middleware

import (
	"errors"
	"net/http"

	"farming-stats/internal/cache"
	"farming-stats/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey 存放已解析身分的 echo context key
const ContextUserKey = "user"

// SessionCookieName 傳遞 session token 的 HttpOnly cookie 名稱
const SessionCookieName = "session_id"

// SessionFromRequest 自請求 cookie 解析 session 身分
// cookie 不存在或 token 已失效回傳 service.ErrNoSession
func SessionFromRequest(c echo.Context, rdb cache.Cache) (*service.SessionData, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, service.ErrNoSession
	}
	return service.ResolveSession(c.Request().Context(), rdb, cookie.Value)
}

// RequireAuth 要求有效 session，成功時將身分放入 context
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			data, err := SessionFromRequest(c, rdb)
			if err != nil {
				if errors.Is(err, service.ErrNoSession) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid session")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable")
			}
			c.Set(ContextUserKey, data)
			return next(c)
		}
	}
}
