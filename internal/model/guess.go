// internal/model/guess.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Guess はセッション内の1回の解答を表します。
// (session_id, attempt_number) は複合ユニーク。セッション削除時はカスケード削除されます。
type Guess struct {
	GuessID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"-"`
	SessionID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_session_attempt,unique" json:"-"`
	AttemptNumber int            `gorm:"not null;index:idx_session_attempt,unique" json:"attempt_number"` // 1始まり
	GuessWord     string         `gorm:"not null" json:"guess"`  // 小文字に正規化済み
	Result        string         `gorm:"not null" json:"result"` // 1文字/1位置のコンパクト表現 (g/y/b)
	IsCorrect     bool           `gorm:"not null;default:false" json:"is_correct"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"` // エンジン固有の付加情報
	CreatedAt     time.Time      `json:"created_at"`

	// 関連
	Session *GameSession `gorm:"foreignKey:SessionID;references:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Guess) TableName() string {
	return "guesses"
}

func (g *Guess) BeforeSave(tx *gorm.DB) error {
	g.GuessWord = strings.ToLower(strings.TrimSpace(g.GuessWord))
	return nil
}
