// internal/service/scoring.go
package service

import (
	"sort"

	"go_5_wordle_game/internal/model"
)

// ヒント1回あたりの減点
const hintPenaltyPerHint = 1

// ScoreBreakdown はスコアの内訳です
type ScoreBreakdown struct {
	Base        int
	TimeBonus   int
	HintPenalty int
	Final       int
}

// baseScore は基礎スコアを計算します。
// 勝利: max(max_attempts - attempts_used + 1, 1)
// 敗北: 0
// 進行中: max(max_attempts - attempts_used, 0) (残り試行数を暫定スコアとして返す)
func baseScore(session *model.GameSession, attemptsUsed int) int {
	if session.IsCompleted {
		if session.IsWon {
			score := session.MaxAttempts - attemptsUsed + 1
			if score < 1 {
				return 1
			}
			return score
		}
		return 0
	}
	score := session.MaxAttempts - attemptsUsed
	if score < 0 {
		return 0
	}
	return score
}

// timeBonus は時間ボーナスを計算します。
// timedモードで制限時間と経過時間の両方が設定されている場合のみ、
// floor(max(time_limit - total_time, 0) / 10) を加点します。
func timeBonus(session *model.GameSession) int {
	if session.Mode != model.ModeTimed {
		return 0
	}
	if session.TimeLimitSecs == nil || session.TotalTimeSecs == nil {
		return 0
	}
	saved := *session.TimeLimitSecs - *session.TotalTimeSecs
	if saved < 0 {
		saved = 0
	}
	return saved / 10
}

// ComputeScore はセッションのスコア内訳を計算します。最終スコアは0未満にはなりません。
func ComputeScore(session *model.GameSession, attemptsUsed int) ScoreBreakdown {
	breakdown := ScoreBreakdown{
		Base:        baseScore(session, attemptsUsed),
		TimeBonus:   timeBonus(session),
		HintPenalty: session.HintsUsed * hintPenaltyPerHint,
	}
	final := breakdown.Base + breakdown.TimeBonus - breakdown.HintPenalty
	if final < 0 {
		final = 0
	}
	breakdown.Final = final
	return breakdown
}

// SortLeaderboard はスコア降順、同点なら完了時刻の早い順に並べます
func SortLeaderboard(entries []model.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].EndedAt.Before(entries[j].EndedAt)
	})
}
