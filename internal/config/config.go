package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	// バックエンドAPIのベースURL
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
	// HTTPクライアントのタイムアウト。リトライはしない（失敗は都度画面へ）
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// 通知ポーリング間隔
	NotifyPollInterval time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"5s"`
	// スタッフ注文キューのポーリング間隔
	OrderPollInterval time.Duration `envconfig:"ORDER_POLL_INTERVAL" default:"10s"`

	// チェックアウト時の既定の支払い方法
	DefaultPaymentMethod string `envconfig:"DEFAULT_PAYMENT_METHOD" default:"Cash"`

	// トークン保存先。空なら ~/.canteen/token
	TokenPath string `envconfig:"TOKEN_PATH"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Loadは環境変数から設定を読む。.envがあれば先に取り込む。
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("CANTEEN", &cfg); err != nil {
		return Config{}, err
	}

	if cfg.TokenPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.TokenPath = filepath.Join(home, ".canteen", "token")
		}
	}

	return cfg, nil
}
