// internal/puzzle/registry_test.go
package puzzle

import (
	"testing"

	"go_5_wordle_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry_Resolve(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		name       string
		puzzleType string
		wantErr    error
	}{
		{name: "正常系: classic", puzzleType: "classic"},
		{name: "正常系: anagram", puzzleType: "anagram"},
		{name: "正常系: 大文字・空白は正規化される", puzzleType: "  Classic  "},
		{name: "異常系: 未登録の識別子", puzzleType: "number", wantErr: model.ErrUnknownPuzzleType},
		{name: "異常系: 空文字", puzzleType: "", wantErr: model.ErrUnknownPuzzleType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, err := registry.Resolve(tc.puzzleType)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, engine)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, engine)
		})
	}
}

func Test_Registry_Register(t *testing.T) {
	registry := NewRegistry()

	// 空のキーは拒否
	err := registry.Register("  ", NewClassicEngine)
	require.ErrorIs(t, err, model.ErrInvalidInput)

	// 登録すれば解決できる
	require.NoError(t, registry.Register("reverse", NewClassicEngine))
	engine, err := registry.Resolve("reverse")
	require.NoError(t, err)
	assert.NotNil(t, engine)

	// 上書き登録も許可される (ディスパッチに手を入れずにエンジンを差し替えられる)
	require.NoError(t, registry.Register("reverse", NewAnagramEngine))
	engine, err = registry.Resolve("reverse")
	require.NoError(t, err)

	got, err := engine.Evaluate("listen", "silent")
	require.NoError(t, err)
	assert.True(t, got.IsCorrect, "上書き後はAnagramEngineの判定になるはず")
}

func Test_Registry_Types(t *testing.T) {
	registry := DefaultRegistry()
	assert.Equal(t, []string{"anagram", "classic"}, registry.Types())
}
