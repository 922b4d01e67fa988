// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "WordleGameAPI"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultWordLength       = 5
	DefaultMaxAttempts      = 6
	DefaultLeaderboardLimit = 100
)
