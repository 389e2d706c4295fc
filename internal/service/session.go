// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"farming-stats/internal/cache"
	"farming-stats/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionData 存入 session store 的序列化身分，絕不包含密碼哈希
type SessionData struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// ErrNoSession 表示 token 不存在或已過期/撤銷
var ErrNoSession = errors.New("no active session")

const sessionKeyPrefix = "session:"

// 以下變數封裝外部呼叫，測試可覆寫
var (
	uuidNewRandom = uuid.NewRandom
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// EstablishSession 產生不透明 token，將身分以 TTL 寫入 session store
// 身分於此刻自 Credential Store 取得後即為快取值，之後的 Resolve 不再回查資料庫
func EstablishSession(ctx context.Context, rdb cache.Cache, user model.User, ttl time.Duration) (string, error) {
	id, err := uuidNewRandom()
	if err != nil {
		return "", fmt.Errorf("EstablishSession: %w", err)
	}
	token := id.String()

	data, err := jsonMarshal(SessionData{Username: user.Username, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", fmt.Errorf("EstablishSession: %w", err)
	}
	if err := rdb.Set(ctx, sessionKeyPrefix+token, data, ttl).Err(); err != nil {
		return "", fmt.Errorf("EstablishSession: %w", err)
	}
	return token, nil
}

// ResolveSession 以 token 取回身分；不存在或已過期回傳 ErrNoSession
func ResolveSession(ctx context.Context, rdb cache.Cache, token string) (*SessionData, error) {
	raw, err := rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("ResolveSession: %w", err)
	}

	var data SessionData
	if err := jsonUnmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("ResolveSession: %w", err)
	}
	return &data, nil
}

// RevokeSession 使 token 失效；已終止的 session 不可恢復
func RevokeSession(ctx context.Context, rdb cache.Cache, token string) error {
	if err := rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("RevokeSession: %w", err)
	}
	return nil
}
