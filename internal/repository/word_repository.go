//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_wordle_game/internal/middleware"
	"go_5_wordle_game/internal/model"

	"gorm.io/gorm"
)

// WordRepository は辞書単語の読み取り・登録を提供します (ゲーム中は読み取りのみ)
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	CreateAll(ctx context.Context, tx *gorm.DB, words []*model.Word) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	FindRandomActiveByLength(ctx context.Context, db *gorm.DB, length int) (*model.Word, error)
	ExistsByTextAndLength(ctx context.Context, db *gorm.DB, text string, length int) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"text", word.Text,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) CreateAll(ctx context.Context, tx *gorm.DB, words []*model.Word) error {
	logger := middleware.GetLogger(ctx)
	if len(words) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).CreateInBatches(words, 100)
	if result.Error != nil {
		logger.Error("Error bulk creating words in DB",
			"error", result.Error,
			"count", len(words),
		)
		return fmt.Errorf("gormWordRepository.CreateAll: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting words in DB", "error", result.Error)
		return 0, fmt.Errorf("gormWordRepository.Count: %w", result.Error)
	}
	return count, nil
}

// FindRandomActiveByLength は指定長のアクティブな単語をランダムに1件返します。
// 該当なしの場合は model.ErrNoWordForLength を返します。
// RANDOM() はPostgreSQL/SQLite共通で使える前提です。
func (r *gormWordRepository) FindRandomActiveByLength(ctx context.Context, db *gorm.DB, length int) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).
		Where("length = ? AND is_active = ?", length, true).
		Order("RANDOM()").
		First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNoWordForLength
		}
		logger.Error("Error finding random active word in DB",
			"error", result.Error,
			"length", length,
		)
		return nil, fmt.Errorf("gormWordRepository.FindRandomActiveByLength: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) ExistsByTextAndLength(ctx context.Context, db *gorm.DB, text string, length int) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Word{}).
		Where("text = ? AND length = ?", text, length).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking word existence in DB",
			"error", result.Error,
			"text", text,
			"length", length,
		)
		return false, fmt.Errorf("gormWordRepository.ExistsByTextAndLength: %w", result.Error)
	}
	return count > 0, nil
}
