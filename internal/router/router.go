// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"farming-stats/internal/cache"
	"farming-stats/internal/database"
	"farming-stats/internal/handler"
	"farming-stats/internal/handler/auth"
	"farming-stats/internal/handler/items"
	"farming-stats/internal/handler/results"
	"farming-stats/internal/middleware"
)

// Setup 註冊所有路由並注入 db 與 session store
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, sessionTTL time.Duration) {
	// 健康檢查（需登入）
	e.GET("/ping", handler.PingHandler(db), middleware.RequireAuth(rdb))

	// 註冊、登入與 session 身分
	e.POST("/register", auth.RegisterHandler(db))
	e.POST("/login", auth.LoginHandler(db, rdb, sessionTTL))
	e.GET("/user", auth.UserHandler(rdb))
	e.GET("/logout", auth.LogoutHandler(rdb))

	// Item 相關路由（上游自動化工具呼叫，無需登入）
	e.POST("/create-item/:farmingMode/:itemName", items.CreateItemHandler(db))
	e.GET("/get-item/:farmingMode", items.GetItemsHandler(db))
	e.GET("/get-item/:farmingMode/:itemName", items.GetItemHandler(db))

	// Result 相關路由
	e.POST("/create-result/:userID/:itemName/:amount", results.CreateResultHandler(db))
	e.POST("/create-result/:userID/:itemName/:platform/:amount", results.CreateResultPlatformHandler(db))
	e.GET("/get-result/:userID", results.GetResultsByUserHandler(db))
	e.GET("/get-result/user/:userID", results.GetResultsByUserHandler(db))
	e.GET("/get-result/item/:itemName", results.GetResultsByItemHandler(db))
	e.GET("/get-result/farmingMode/:farmingMode", results.GetResultsByModeHandler(db))
}
