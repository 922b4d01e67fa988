// internal/model/word.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は出題・回答に使える辞書上の単語を表します
type Word struct {
	WordID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	Text      string    `gorm:"not null;uniqueIndex" json:"text"`  // 小文字に正規化済み
	Length    int       `gorm:"not null;index" json:"length"`      // len(Text) から導出
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"` // 出題対象にできるか
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// BeforeSave で正規化と長さの導出を行う
func (w *Word) BeforeSave(tx *gorm.DB) error {
	w.Text = strings.ToLower(strings.TrimSpace(w.Text))
	w.Length = len(w.Text)
	return nil
}

// BeforeCreate で主キーを採番する (呼び出し側が指定していない場合のみ)
func (w *Word) BeforeCreate(tx *gorm.DB) error {
	if w.WordID == uuid.Nil {
		w.WordID = uuid.New()
	}
	return nil
}
