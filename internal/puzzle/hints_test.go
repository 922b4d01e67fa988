// internal/puzzle/hints_test.go
package puzzle

import (
	"testing"

	"go_5_wordle_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CanUseHint(t *testing.T) {
	tests := []struct {
		name    string
		session *model.GameSession
		wantErr error
	}{
		{
			name:    "正常系: ヒント未使用",
			session: &model.GameSession{HintsUsed: 0},
		},
		{
			name:    "正常系: 残り1回",
			session: &model.GameSession{HintsUsed: MaxHintsPerSession - 1},
		},
		{
			name:    "異常系: 上限到達",
			session: &model.GameSession{HintsUsed: MaxHintsPerSession},
			wantErr: model.ErrHintQuotaExceeded,
		},
		{
			name:    "異常系: 完了済みセッション",
			session: &model.GameSession{IsCompleted: true},
			wantErr: model.ErrSessionCompleted,
		},
		{
			name:    "異常系: 完了済みが上限より優先される",
			session: &model.GameSession{IsCompleted: true, HintsUsed: MaxHintsPerSession},
			wantErr: model.ErrSessionCompleted,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanUseHint(tc.session)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_RevealPosition(t *testing.T) {
	target := "apple"

	// ランダムなので複数回実行して範囲と整合性を確認する
	for i := 0; i < 50; i++ {
		idx, letter := RevealPosition(target)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(target))
		assert.Equal(t, string(target[idx]), letter)
	}
}

func Test_RevealFirstLetter(t *testing.T) {
	idx, letter := RevealFirstLetter("zebra")
	assert.Equal(t, 0, idx)
	assert.Equal(t, "z", letter)
}

func Test_HintsRemaining(t *testing.T) {
	assert.Equal(t, 2, HintsRemaining(0))
	assert.Equal(t, 1, HintsRemaining(1))
	assert.Equal(t, 0, HintsRemaining(2))
	assert.Equal(t, 0, HintsRemaining(3)) // 上限超過でも負にはならない
}
