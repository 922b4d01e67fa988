//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_5_wordle_game/internal/middleware"
	"go_5_wordle_game/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository はゲームセッションとその解答行の永続化を提供します
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.GameSession) error
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.GameSession, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*model.GameSession, error)
	Update(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, updates map[string]interface{}) error
	CreateGuess(ctx context.Context, tx *gorm.DB, guess *model.Guess) error
	CountGuesses(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (int64, error)
	FindGuesses(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Guess, error)
	FindCompleted(ctx context.Context, db *gorm.DB, filter model.LeaderboardFilter) ([]*model.GameSession, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.GameSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating game session in DB",
			"error", result.Error,
			"target_word_id", session.TargetWordID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.GameSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.GameSession
	result := db.WithContext(ctx).
		Preload("TargetWord").
		Where("session_id = ?", sessionID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding session by ID in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

// FindByIDForUpdate はセッション行を SELECT ... FOR UPDATE でロックして取得します。
// 同一セッションへの並行する解答・ヒントをこのロックで直列化します。
// 必ずトランザクション内で呼び出すこと。
func (r *gormSessionRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*model.GameSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.GameSession
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("TargetWord").
		Where("session_id = ?", sessionID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error locking session row in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByIDForUpdate: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) Update(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).
		Model(&model.GameSession{}).
		Where("session_id = ?", sessionID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// CreateGuess は解答行を追加します。(session_id, attempt_number) のユニーク制約違反は
// 排他制御が正しければ起こり得ないため、発生した場合は ErrConflict として返します。
func (r *gormSessionRepository) CreateGuess(ctx context.Context, tx *gorm.DB, guess *model.Guess) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(guess)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) ||
			strings.Contains(result.Error.Error(), "duplicate key") ||
			strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			logger.Error("Duplicate attempt number detected, mutual exclusion violated",
				"session_id", guess.SessionID.String(),
				"attempt_number", guess.AttemptNumber,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating guess in DB",
			"error", result.Error,
			"session_id", guess.SessionID.String(),
			"attempt_number", guess.AttemptNumber,
		)
		return fmt.Errorf("gormSessionRepository.CreateGuess: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) CountGuesses(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Guess{}).
		Where("session_id = ?", sessionID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting guesses in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return 0, fmt.Errorf("gormSessionRepository.CountGuesses: %w", result.Error)
	}
	return count, nil
}

func (r *gormSessionRepository) FindGuesses(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Guess, error) {
	logger := middleware.GetLogger(ctx)
	var guesses []*model.Guess
	result := db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("attempt_number ASC").
		Find(&guesses)
	if result.Error != nil {
		logger.Error("Error finding guesses in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindGuesses: %w", result.Error)
	}
	return guesses, nil
}

// FindCompleted は完了済みセッションを返します (リーダーボード用)。
// 並び順はスコア計算後にサービス層で確定するため、ここでは ended_at 昇順で返すだけです。
func (r *gormSessionRepository) FindCompleted(ctx context.Context, db *gorm.DB, filter model.LeaderboardFilter) ([]*model.GameSession, error) {
	logger := middleware.GetLogger(ctx)
	query := db.WithContext(ctx).
		Preload("TargetWord").
		Where("is_completed = ?", true)
	if filter.Mode != "" {
		query = query.Where("mode = ?", filter.Mode)
	}
	if filter.PuzzleType != "" {
		query = query.Where("puzzle_type = ?", filter.PuzzleType)
	}
	var sessions []*model.GameSession
	result := query.Order("ended_at ASC").Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding completed sessions in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSessionRepository.FindCompleted: %w", result.Error)
	}
	return sessions, nil
}
