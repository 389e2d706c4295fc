// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"farming-stats/internal/model"
)

// ErrInvalidCredentials 統一的驗證失敗錯誤
// 「查無此人」與「密碼錯誤」皆回傳此值，避免帳號枚舉
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUser 根據使用者結構和明文密碼驗證，成功回傳使用者
func AuthenticateUser(ctx context.Context, user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
