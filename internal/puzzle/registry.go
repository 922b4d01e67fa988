// internal/puzzle/registry.go
package puzzle

import (
	"sort"
	"strings"
	"sync"

	"go_5_wordle_game/internal/model"
)

// パズル種別の識別子
const (
	TypeClassic = "classic"
	TypeAnagram = "anagram"
)

// Registry はパズル種別の識別子からエンジンのコンストラクタを引くためのレジストリです。
// リフレクションは使わず、明示的なマップで管理します。実行時の追加登録も可能です。
type Registry struct {
	mu      sync.RWMutex
	engines map[string]func() Engine
}

func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]func() Engine),
	}
}

// Register はエンジンのコンストラクタを登録します。既存の登録は上書きされます。
// キーは小文字にトリムして正規化されます。空のキーは ErrInvalidInput を返します。
func (r *Registry) Register(puzzleType string, constructor func() Engine) error {
	key := strings.ToLower(strings.TrimSpace(puzzleType))
	if key == "" {
		return model.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[key] = constructor
	return nil
}

// Resolve は識別子に対応するエンジンを生成して返します。
// 未登録の識別子の場合は ErrUnknownPuzzleType を返します。
func (r *Registry) Resolve(puzzleType string) (Engine, error) {
	key := strings.ToLower(strings.TrimSpace(puzzleType))
	r.mu.RLock()
	constructor, ok := r.engines[key]
	r.mu.RUnlock()
	if !ok {
		return nil, model.ErrUnknownPuzzleType
	}
	return constructor(), nil
}

// Types は登録済みの識別子をソートして返します (GET /puzzle-types 用)
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.engines))
	for key := range r.engines {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}

// DefaultRegistry は組み込みエンジンを登録済みのレジストリを返します
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeClassic, NewClassicEngine)
	r.Register(TypeAnagram, NewAnagramEngine)
	return r
}
