// internal/puzzle/engine.go
package puzzle

import "strings"

// Evaluation はエンジンによる1回の判定結果です
type Evaluation struct {
	Feedback  []Feedback
	IsCorrect bool
	Metadata  map[string]any // どのエンジンが判定したか等の付加情報
}

// Engine はパズルの判定ルールを実装するインターフェースです。
// バリアントが違っても Feedback の形式は共通で、正解判定のルールのみが変わります。
type Engine interface {
	Evaluate(target, guess string) (*Evaluation, error)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ClassicEngine は位置一致での完全一致を正解とする標準ルールです
type ClassicEngine struct{}

func NewClassicEngine() Engine {
	return &ClassicEngine{}
}

func (e *ClassicEngine) Evaluate(target, guess string) (*Evaluation, error) {
	t := normalize(target)
	g := normalize(guess)

	feedback, err := ComputeFeedback(t, g)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Feedback:  feedback,
		IsCorrect: t == g,
		Metadata:  map[string]any{"engine": "classic"},
	}, nil
}

// AnagramEngine は文字の多重集合が一致すれば (= 並べ替えで一致すれば) 正解とする
// ルールです。UIの互換性のため Feedback は ClassicEngine と同じ形式で返します。
type AnagramEngine struct{}

func NewAnagramEngine() Engine {
	return &AnagramEngine{}
}

func (e *AnagramEngine) Evaluate(target, guess string) (*Evaluation, error) {
	t := normalize(target)
	g := normalize(guess)

	feedback, err := ComputeFeedback(t, g)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Feedback:  feedback,
		IsCorrect: sameLetterMultiset(t, g),
		Metadata:  map[string]any{"engine": "anagram"},
	}, nil
}

// sameLetterMultiset は2つの文字列が同じ文字を同じ個数だけ含むか判定します
func sameLetterMultiset(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[byte]int)
	for i := 0; i < len(a); i++ {
		counts[a[i]]++
		counts[b[i]]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
