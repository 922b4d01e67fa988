// internal/model/game.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ヒントの種類
const (
	HintRevealPosition    = "reveal_position"
	HintRevealFirstLetter = "reveal_first_letter"
)

// StartGameRequest はゲーム開始リクエストのDTO
type StartGameRequest struct {
	WordLength    int     `json:"word_length" validate:"omitempty,min=3,max=10"`
	MaxAttempts   int     `json:"max_attempts" validate:"omitempty,min=1,max=10"`
	Mode          string  `json:"mode" validate:"omitempty,oneof=classic timed daily endless"`
	PuzzleType    string  `json:"puzzle_type" validate:"omitempty,min=1"`
	Difficulty    int     `json:"difficulty" validate:"omitempty,min=1,max=10"`
	TimeLimitSecs *int    `json:"time_limit_secs,omitempty" validate:"omitempty,min=1"`
	PlayerName    *string `json:"player_name,omitempty" validate:"omitempty,max=64"`
}

// StartGameResponse はゲーム開始レスポンスのDTO
type StartGameResponse struct {
	SessionID     uuid.UUID `json:"session_id"`
	WordLength    int       `json:"word_length"`
	MaxAttempts   int       `json:"max_attempts"`
	AttemptsUsed  int       `json:"attempts_used"`
	Status        string    `json:"status"`
	Mode          string    `json:"mode"`
	PuzzleType    string    `json:"puzzle_type"`
	Difficulty    int       `json:"difficulty"`
	TimeLimitSecs *int      `json:"time_limit_secs"`
	HintsUsed     int       `json:"hints_used"`
	TotalTimeSecs *int      `json:"total_time_secs"`
}

// GuessRequest は解答送信リクエストのDTO
type GuessRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	Guess     string    `json:"guess" validate:"required,alpha"`
}

// GuessResponse は解答送信レスポンスのDTO。スコアの内訳も返します。
type GuessResponse struct {
	SessionID     uuid.UUID `json:"session_id"`
	AttemptNumber int       `json:"attempt_number"`
	Guess         string    `json:"guess"`
	Feedback      []string  `json:"feedback"` // correct/present/absent
	IsCorrect     bool      `json:"is_correct"`
	AttemptsUsed  int       `json:"attempts_used"`
	MaxAttempts   int       `json:"max_attempts"`
	Status        string    `json:"status"`
	Score         int       `json:"score"`
	BaseScore     int       `json:"base_score"`
	HintPenalty   int       `json:"hint_penalty"`
	TimeBonus     int       `json:"time_bonus"`
}

// HintRequest はヒント取得リクエストのDTO
type HintRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	Type      string    `json:"type" validate:"omitempty,oneof=reveal_position reveal_first_letter"`
}

// HintData はヒントの内容
type HintData struct {
	Index     int    `json:"index"`
	Letter    string `json:"letter"`
	Remaining int    `json:"remaining"` // 残りヒント回数
}

// HintResponse はヒント取得レスポンスのDTO
type HintResponse struct {
	Type string   `json:"type"`
	Data HintData `json:"data"`
}

// GuessHistoryEntry はセッション詳細に含める解答履歴の1件
type GuessHistoryEntry struct {
	AttemptNumber int       `json:"attempt_number"`
	Guess         string    `json:"guess"`
	Feedback      []string  `json:"feedback"` // コンパクト表現から展開済み
	IsCorrect     bool      `json:"is_correct"`
	CreatedAt     time.Time `json:"created_at"`
}

// SessionDetailResponse はセッション詳細レスポンスのDTO
type SessionDetailResponse struct {
	SessionID     uuid.UUID           `json:"session_id"`
	WordLength    int                 `json:"word_length"`
	MaxAttempts   int                 `json:"max_attempts"`
	AttemptsUsed  int                 `json:"attempts_used"`
	Status        string              `json:"status"`
	Mode          string              `json:"mode"`
	PuzzleType    string              `json:"puzzle_type"`
	Difficulty    int                 `json:"difficulty"`
	HintsUsed     int                 `json:"hints_used"`
	TimeLimitSecs *int                `json:"time_limit_secs"`
	TotalTimeSecs *int                `json:"total_time_secs"`
	PlayerName    *string             `json:"player_name"`
	StartedAt     time.Time           `json:"started_at"`
	EndedAt       *time.Time          `json:"ended_at"`
	Guesses       []GuessHistoryEntry `json:"guesses"`
	Score         int                 `json:"score"`
	BaseScore     int                 `json:"base_score"`
	HintPenalty   int                 `json:"hint_penalty"`
	TimeBonus     int                 `json:"time_bonus"`
}

// LeaderboardEntry はリーダーボードの1件 (完了済みセッションの射影)
type LeaderboardEntry struct {
	SessionID    uuid.UUID `json:"session_id"`
	PlayerName   *string   `json:"player_name"`
	Mode         string    `json:"mode"`
	PuzzleType   string    `json:"puzzle_type"`
	AttemptsUsed int       `json:"attempts_used"`
	MaxAttempts  int       `json:"max_attempts"`
	Score        int       `json:"score"`
	EndedAt      time.Time `json:"ended_at"`
}

// LeaderboardFilter はリーダーボードの絞り込み条件
type LeaderboardFilter struct {
	Mode       string
	PuzzleType string
}

// DiagnosticsCheck は自己診断エンドポイントの1チェック結果
type DiagnosticsCheck struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// DiagnosticsResponse は自己診断エンドポイントのレスポンス
type DiagnosticsResponse struct {
	OK     bool               `json:"ok"`
	Checks []DiagnosticsCheck `json:"checks"`
}
