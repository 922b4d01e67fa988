// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ゲームモード
const (
	ModeClassic = "classic"
	ModeTimed   = "timed"
	ModeDaily   = "daily"
	ModeEndless = "endless"
)

// Modes は受け付けるゲームモードの一覧 (GET /modes でも返す)
var Modes = []string{ModeClassic, ModeTimed, ModeDaily, ModeEndless}

// セッションの公開ステータス
const (
	StatusInProgress = "IN_PROGRESS"
	StatusWon        = "WON"
	StatusLost       = "LOST"
)

// GameSession は1回のプレイを表します。
// TargetWord は RESTRICT 付きの外部キーで、使用中の単語の削除は拒否されます。
type GameSession struct {
	SessionID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	TargetWordID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	MaxAttempts  int       `gorm:"not null;default:6" json:"max_attempts"`
	Mode         string    `gorm:"not null;default:classic" json:"mode"`
	PuzzleType   string    `gorm:"not null;default:classic" json:"puzzle_type"`
	Difficulty   int       `gorm:"not null;default:1" json:"difficulty"`
	HintsUsed    int       `gorm:"not null;default:0" json:"hints_used"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"is_completed"`
	IsWon        bool      `gorm:"not null;default:false" json:"is_won"`
	StartedAt    time.Time  `gorm:"not null" json:"started_at"`
	EndedAt      *time.Time `json:"ended_at"` // IsCompleted の場合のみ設定される
	TimeLimitSecs *int      `json:"time_limit_secs"` // timedモードのみ
	TotalTimeSecs *int      `json:"total_time_secs"` // 完了時に一度だけ設定される
	PlayerName    *string   `json:"player_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 関連 (Preload用)
	TargetWord *Word `gorm:"foreignKey:TargetWordID;references:WordID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// Status はDB上のフラグを公開ステータス文字列に変換します
func (s *GameSession) Status() string {
	if s.IsCompleted {
		if s.IsWon {
			return StatusWon
		}
		return StatusLost
	}
	return StatusInProgress
}
