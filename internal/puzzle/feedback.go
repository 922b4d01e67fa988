// internal/puzzle/feedback.go
package puzzle

import "go_5_wordle_game/internal/model"

// Feedback は1文字ごとの判定結果です
type Feedback string

const (
	FeedbackCorrect Feedback = "correct" // 正しい文字が正しい位置にある
	FeedbackPresent Feedback = "present" // 文字は含まれるが位置が違う (残数を考慮)
	FeedbackAbsent  Feedback = "absent"  // 含まれない、または残数を使い切った
)

// ComputeFeedback はWordleと同じ2パスの判定を行います。
// 1パス目で correct を確定しつつ、未消費の文字数をカウントし、
// 2パス目で残数の範囲内で present を割り当てます (重複文字は左から優先)。
// target と guess の長さが一致しない場合は ErrLengthMismatch を返します。
func ComputeFeedback(target, guess string) ([]Feedback, error) {
	if len(target) != len(guess) {
		return nil, model.ErrLengthMismatch
	}

	n := len(target)
	result := make([]Feedback, n)
	remaining := make(map[byte]int)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			result[i] = FeedbackCorrect
		} else {
			remaining[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if result[i] == FeedbackCorrect {
			continue
		}
		if remaining[guess[i]] > 0 {
			result[i] = FeedbackPresent
			remaining[guess[i]]--
		} else {
			result[i] = FeedbackAbsent
		}
	}

	return result, nil
}

// ToCompact はDB保存用のコンパクト表現に変換します (g=correct, y=present, b=absent)
func ToCompact(feedback []Feedback) string {
	buf := make([]byte, len(feedback))
	for i, f := range feedback {
		switch f {
		case FeedbackCorrect:
			buf[i] = 'g'
		case FeedbackPresent:
			buf[i] = 'y'
		default:
			buf[i] = 'b'
		}
	}
	return string(buf)
}

// FromCompact はコンパクト表現を展開します。未知の文字は absent として扱います。
func FromCompact(compact string) []Feedback {
	result := make([]Feedback, len(compact))
	for i := 0; i < len(compact); i++ {
		switch compact[i] {
		case 'g':
			result[i] = FeedbackCorrect
		case 'y':
			result[i] = FeedbackPresent
		default:
			result[i] = FeedbackAbsent
		}
	}
	return result
}

// Strings はレスポンス用に []string へ変換します
func Strings(feedback []Feedback) []string {
	result := make([]string, len(feedback))
	for i, f := range feedback {
		result[i] = string(f)
	}
	return result
}
