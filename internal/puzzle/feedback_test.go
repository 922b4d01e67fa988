// internal/puzzle/feedback_test.go
package puzzle

import (
	"strings"
	"testing"

	"go_5_wordle_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ComputeFeedback(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		guess   string
		want    string // コンパクト表現で期待値を書く
		wantErr error
	}{
		{
			name:   "正常系: 完全一致は全てcorrect",
			target: "apple",
			guess:  "apple",
			want:   "ggggg",
		},
		{
			name:   "正常系: 全く含まれない文字は全てabsent",
			target: "apple",
			guess:  "storm",
			want:   "bbbbb",
		},
		{
			name:   "正常系: 位置違いはpresent",
			target: "crane",
			guess:  "nacre",
			want:   "yyyyg",
		},
		{
			name:   "正常系: 重複文字はターゲット内の残数を超えてpresentにならない",
			target: "apple", // pは2個、lは1個
			guess:  "pppll",
			want:   "bgggb", // 先頭のpと末尾のlは残数切れでabsent
		},
		{
			name:   "正常系: 重複文字のタイは左の位置を優先",
			target: "abbey",
			guess:  "babes",
			want:   "yyggb",
		},
		{
			name:   "正常系: correctが先に残数を消費する",
			target: "abbey",
			guess:  "bbbbb", // bは2個: 2,3番目がcorrect、他は残数切れでabsent
			want:   "bggbb",
		},
		{
			name:    "異常系: 長さ不一致はエラー",
			target:  "apple",
			guess:   "pear",
			wantErr: model.ErrLengthMismatch,
		},
		{
			name:    "異常系: 空のguessと非空のtargetはエラー",
			target:  "apple",
			guess:   "",
			wantErr: model.ErrLengthMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeFeedback(tc.target, tc.guess)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tc.target))
			assert.Equal(t, tc.want, ToCompact(got))
		})
	}
}

// correct+present の数がターゲット内の文字数を超えないことを確認する
func Test_ComputeFeedback_MultisetProperty(t *testing.T) {
	pairs := []struct{ target, guess string }{
		{"apple", "pppll"},
		{"abbey", "babes"},
		{"llama", "aalll"},
		{"crane", "nacre"},
		{"sassy", "sssss"},
	}

	for _, pair := range pairs {
		feedback, err := ComputeFeedback(pair.target, pair.guess)
		require.NoError(t, err)

		for ch := byte('a'); ch <= 'z'; ch++ {
			marked := 0
			for i := range feedback {
				if pair.guess[i] == ch && feedback[i] != FeedbackAbsent {
					marked++
				}
			}
			inTarget := strings.Count(pair.target, string(ch))
			assert.LessOrEqual(t, marked, inTarget,
				"target=%s guess=%s letter=%c", pair.target, pair.guess, ch)
		}
	}
}

func Test_CompactRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		feedback []Feedback
	}{
		{"全てcorrect", []Feedback{FeedbackCorrect, FeedbackCorrect}},
		{"混在", []Feedback{FeedbackCorrect, FeedbackPresent, FeedbackAbsent, FeedbackPresent}},
		{"空", []Feedback{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			compact := ToCompact(tc.feedback)
			assert.Len(t, compact, len(tc.feedback))
			assert.Equal(t, tc.feedback, FromCompact(compact))
		})
	}
}

func Test_FromCompact_UnknownChar(t *testing.T) {
	// 未知の文字はabsentに落とす
	got := FromCompact("g?y")
	assert.Equal(t, []Feedback{FeedbackCorrect, FeedbackAbsent, FeedbackPresent}, got)
}

func Test_Strings(t *testing.T) {
	got := Strings([]Feedback{FeedbackCorrect, FeedbackAbsent})
	assert.Equal(t, []string{"correct", "absent"}, got)
}
