// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"farming-stats/internal/database"
	"farming-stats/internal/dto"
	"farming-stats/internal/model"
	"farming-stats/internal/service"
	"farming-stats/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者
// @Summary     Register a new user
// @Description 建立新帳號，密碼以 bcrypt 哈希後儲存，明文絕不落地
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true  "使用者名稱"
// @Param       password formData string true  "使用者密碼"
// @Param       email    formData string false "使用者 Email"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for username or password."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Improper values for username or password."})
		}

		ctx := c.Request().Context()

		// 先查重複，給出明確的 409；真正的唯一性由資料庫約束保證
		if _, err := store.GetUserByName(ctx, db, req.Username); err == nil {
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: "User ID already exists."})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}

		user := &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
		}
		if _, err := store.CreateUser(ctx, db, user); err != nil {
			// 併發註冊撞上唯一約束時同樣回 409
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "User ID already exists."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "internal error"})
		}

		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Successfully created user."})
	}
}
