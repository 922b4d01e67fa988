// internal/puzzle/hints.go
package puzzle

import (
	"math/rand"

	"go_5_wordle_game/internal/model"
)

// MaxHintsPerSession は1セッションで使えるヒントの上限です
const MaxHintsPerSession = 2

// CanUseHint はセッションがヒントを使える状態か検証します。
// 完了済みなら ErrSessionCompleted、上限到達なら ErrHintQuotaExceeded を返します。
// 判定とカウンタ更新はサービス層で同一トランザクション内にまとめること。
func CanUseHint(session *model.GameSession) error {
	if session.IsCompleted {
		return model.ErrSessionCompleted
	}
	if session.HintsUsed >= MaxHintsPerSession {
		return model.ErrHintQuotaExceeded
	}
	return nil
}

// RevealPosition はターゲットの位置を一様ランダムに1つ選んで開示します。
// 開示済みの位置は記録しないため、同じ位置が再度選ばれることがあります。
func RevealPosition(target string) (int, string) {
	idx := rand.Intn(len(target))
	return idx, string(target[idx])
}

// RevealFirstLetter は常に先頭の文字を開示します
func RevealFirstLetter(target string) (int, string) {
	return 0, string(target[0])
}

// HintsRemaining は残りヒント回数を返します (負にはならない)
func HintsRemaining(hintsUsed int) int {
	remaining := MaxHintsPerSession - hintsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
