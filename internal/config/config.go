// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 彙整服務所需的全部設定，於啟動時一次載入並注入各元件
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		URL string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Session struct {
		TTL time.Duration
	}
	CORS struct {
		Origin string
	}
}

// Load 以環境變數 (前綴 FARMSTATS) 與選用的 config 檔載入設定
// 環境變數範例: FARMSTATS_DATABASE_URL, FARMSTATS_REDIS_ADDR
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FARMSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":4000")
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("cors.origin", "http://localhost:3000")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config 檔為選用

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("無法解析設定: %w", err)
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("FARMSTATS_DATABASE_URL 未設定")
	}
	if cfg.Redis.Addr == "" {
		return Config{}, fmt.Errorf("FARMSTATS_REDIS_ADDR 未設定")
	}
	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("無效的 FARMSTATS_SESSION_TTL")
	}
	return cfg, nil
}
