// internal/service/game_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_5_wordle_game/internal/config"
	"go_5_wordle_game/internal/middleware"
	"go_5_wordle_game/internal/model"
	"go_5_wordle_game/internal/puzzle"
	"go_5_wordle_game/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameService はセッションのライフサイクル全体 (開始・解答・ヒント・参照・集計) を提供します
type GameService interface {
	StartGame(ctx context.Context, req *model.StartGameRequest) (*model.StartGameResponse, error)
	SubmitGuess(ctx context.Context, req *model.GuessRequest) (*model.GuessResponse, error)
	UseHint(ctx context.Context, req *model.HintRequest) (*model.HintResponse, error)
	GetSessionDetail(ctx context.Context, sessionID uuid.UUID) (*model.SessionDetailResponse, error)
	GetLeaderboard(ctx context.Context, filter model.LeaderboardFilter) ([]model.LeaderboardEntry, error)
	PuzzleTypes() []string
}

type gameService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo    repository.WordRepository
	sessionRepo repository.SessionRepository
	registry    *puzzle.Registry
	cfg         *config.Config
}

func NewGameService(db *gorm.DB, wordRepo repository.WordRepository, sessionRepo repository.SessionRepository, registry *puzzle.Registry, cfg *config.Config) GameService {
	return &gameService{
		db:          db,
		wordRepo:    wordRepo,
		sessionRepo: sessionRepo,
		registry:    registry,
		cfg:         cfg,
	}
}

func (s *gameService) StartGame(ctx context.Context, req *model.StartGameRequest) (*model.StartGameResponse, error) {
	logger := middleware.GetLogger(ctx)

	// 未指定のフィールドにデフォルトを適用
	wordLength := req.WordLength
	if wordLength == 0 {
		wordLength = s.cfg.Game.DefaultWordLength
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = s.cfg.Game.DefaultMaxAttempts
	}
	mode := req.Mode
	if mode == "" {
		mode = model.ModeClassic
	}
	puzzleType := req.PuzzleType
	if puzzleType == "" {
		puzzleType = puzzle.TypeClassic
	}
	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}

	// パズル種別はセッション作成前に解決できることを確認しておく
	if _, err := s.registry.Resolve(puzzleType); err != nil {
		return nil, model.NewAppError("UNKNOWN_PUZZLE_TYPE",
			fmt.Sprintf("パズル種別 '%s' は登録されていません。", puzzleType),
			"puzzle_type", model.ErrUnknownPuzzleType)
	}

	var session *model.GameSession

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.wordRepo.FindRandomActiveByLength(ctx, tx, wordLength)
		if err != nil {
			if errors.Is(err, model.ErrNoWordForLength) {
				return model.NewAppError("NO_WORD_FOR_LENGTH",
					fmt.Sprintf("長さ%dのアクティブな単語がありません。", wordLength),
					"word_length", model.ErrNoWordForLength)
			}
			logger.Error("Error finding target word in transaction", "error", err)
			return model.ErrInternalServer
		}

		session = &model.GameSession{
			SessionID:     uuid.New(),
			TargetWordID:  target.WordID,
			MaxAttempts:   maxAttempts,
			Mode:          mode,
			PuzzleType:    puzzleType,
			Difficulty:    difficulty,
			TimeLimitSecs: req.TimeLimitSecs,
			PlayerName:    req.PlayerName,
			StartedAt:     time.Now(),
		}
		session.TargetWord = target
		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			logger.Error("Error creating session in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for StartGame", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Game session started",
		"session_id", session.SessionID.String(),
		"word_length", wordLength,
		"mode", mode,
		"puzzle_type", puzzleType,
	)

	return &model.StartGameResponse{
		SessionID:     session.SessionID,
		WordLength:    session.TargetWord.Length,
		MaxAttempts:   session.MaxAttempts,
		AttemptsUsed:  0,
		Status:        session.Status(),
		Mode:          session.Mode,
		PuzzleType:    session.PuzzleType,
		Difficulty:    session.Difficulty,
		TimeLimitSecs: session.TimeLimitSecs,
		HintsUsed:     0,
		TotalTimeSecs: nil,
	}, nil
}

// SubmitGuess は1回の解答を処理します。セッション行のロックからコミットまでを
// 1つのトランザクションで行い、同一セッションへの並行解答を直列化します。
func (s *gameService) SubmitGuess(ctx context.Context, req *model.GuessRequest) (*model.GuessResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", req.SessionID.String())

	var resp *model.GuessResponse
	// 上限到達の拒否は敗北確定の更新をコミットした上で返す必要があるため、
	// トランザクション内ではエラーにせずここに退避する
	var exhaustedErr *model.AppError

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. セッション行をロックして取得
		session, err := s.sessionRepo.FindByIDForUpdate(ctx, tx, req.SessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			logger.Error("Error locking session in transaction", "error", err)
			return model.ErrInternalServer
		}
		if session.TargetWord == nil {
			logger.Error("Session has no target word preloaded")
			return model.ErrInternalServer
		}

		if session.IsCompleted {
			return model.NewAppError("SESSION_COMPLETED", "このセッションは既に終了しています。", "session_id", model.ErrSessionCompleted)
		}

		attemptsUsed64, err := s.sessionRepo.CountGuesses(ctx, tx, session.SessionID)
		if err != nil {
			logger.Error("Error counting guesses in transaction", "error", err)
			return model.ErrInternalServer
		}
		attemptsUsed := int(attemptsUsed64)

		// 2. 試行回数の上限チェック。最後の解答なしに上限へ達していたセッションは
		//    ここで敗北として確定させる (自己修復)。拒否と敗北確定は同一トランザクション。
		if attemptsUsed >= session.MaxAttempts {
			if !session.IsCompleted {
				if err := s.completeSession(ctx, tx, session, false); err != nil {
					return err
				}
			}
			exhaustedErr = model.NewAppError("ATTEMPTS_EXHAUSTED", "試行回数の上限に達しています。", "", model.ErrConflict)
			// 敗北確定後のステータスを409の応答に含める (クライアントが再取得せずに観測できる)
			exhaustedErr.Detail.Status = session.Status()
			return nil // 敗北確定をコミットしてからエラーを返す
		}

		// 3. 解答のバリデーション (長さ・辞書)
		guessText := normalizeWord(req.Guess)
		if len(guessText) != session.TargetWord.Length {
			return model.NewAppError("LENGTH_MISMATCH",
				fmt.Sprintf("解答は%d文字で入力してください。", session.TargetWord.Length),
				"guess", model.ErrLengthMismatch)
		}
		exists, err := s.wordRepo.ExistsByTextAndLength(ctx, tx, guessText, session.TargetWord.Length)
		if err != nil {
			logger.Error("Error checking dictionary in transaction", "error", err)
			return model.ErrInternalServer
		}
		if !exists {
			return model.NewAppError("WORD_NOT_IN_DICTIONARY", "辞書に存在しない単語です。", "guess", model.ErrWordNotInDictionary)
		}

		// 4. エンジンで判定
		engine, err := s.registry.Resolve(session.PuzzleType)
		if err != nil {
			return model.NewAppError("UNKNOWN_PUZZLE_TYPE",
				fmt.Sprintf("パズル種別 '%s' は登録されていません。", session.PuzzleType),
				"puzzle_type", model.ErrUnknownPuzzleType)
		}
		eval, err := engine.Evaluate(session.TargetWord.Text, guessText)
		if err != nil {
			if errors.Is(err, model.ErrLengthMismatch) {
				return model.NewAppError("LENGTH_MISMATCH", "解答の長さが一致しません。", "guess", model.ErrLengthMismatch)
			}
			logger.Error("Error evaluating guess", "error", err)
			return model.ErrInternalServer
		}

		// 5. 解答行を先に永続化する (完了タイムスタンプより前に試行番号が確定する)
		attemptNumber := attemptsUsed + 1
		metadata, err := json.Marshal(eval.Metadata)
		if err != nil {
			logger.Error("Error marshaling guess metadata", "error", err)
			return model.ErrInternalServer
		}
		guess := &model.Guess{
			GuessID:       uuid.New(),
			SessionID:     session.SessionID,
			AttemptNumber: attemptNumber,
			GuessWord:     guessText,
			Result:        puzzle.ToCompact(eval.Feedback),
			IsCorrect:     eval.IsCorrect,
			Metadata:      metadata,
		}
		if err := s.sessionRepo.CreateGuess(ctx, tx, guess); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 排他制御が正しければ到達しない。テストで見えたら即調査対象。
				return model.NewAppError("DUPLICATE_ATTEMPT", "試行番号が重複しました。", "", model.ErrConflict)
			}
			logger.Error("Error creating guess in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 6. 状態遷移: 正解なら勝利、上限到達なら敗北、それ以外は続行
		if eval.IsCorrect {
			if err := s.completeSession(ctx, tx, session, true); err != nil {
				return err
			}
		} else if attemptNumber >= session.MaxAttempts {
			if err := s.completeSession(ctx, tx, session, false); err != nil {
				return err
			}
		}

		breakdown := ComputeScore(session, attemptNumber)
		resp = &model.GuessResponse{
			SessionID:     session.SessionID,
			AttemptNumber: attemptNumber,
			Guess:         guessText,
			Feedback:      puzzle.Strings(eval.Feedback),
			IsCorrect:     eval.IsCorrect,
			AttemptsUsed:  attemptNumber,
			MaxAttempts:   session.MaxAttempts,
			Status:        session.Status(),
			Score:         breakdown.Final,
			BaseScore:     breakdown.Base,
			HintPenalty:   breakdown.HintPenalty,
			TimeBonus:     breakdown.TimeBonus,
		}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitGuess", "error", err)
		return nil, model.ErrInternalServer
	}

	if exhaustedErr != nil {
		return nil, exhaustedErr
	}

	logger.Info("Guess submitted",
		"attempt_number", resp.AttemptNumber,
		"is_correct", resp.IsCorrect,
		"status", resp.Status,
	)
	return resp, nil
}

// completeSession はセッションを終了状態に遷移させます。
// ended_at / is_completed / is_won は1回の更新でまとめて反映します。
// timedモードで経過時間が未設定なら、ここで一度だけ設定します。
func (s *gameService) completeSession(ctx context.Context, tx *gorm.DB, session *model.GameSession, won bool) error {
	logger := middleware.GetLogger(ctx)
	now := time.Now()

	updates := map[string]interface{}{
		"is_completed": true,
		"is_won":       won,
		"ended_at":     now,
	}
	if session.Mode == model.ModeTimed && session.TotalTimeSecs == nil {
		total := int(now.Sub(session.StartedAt).Seconds()) // 秒未満切り捨て
		updates["total_time_secs"] = total
		session.TotalTimeSecs = &total
	}

	if err := s.sessionRepo.Update(ctx, tx, session.SessionID, updates); err != nil {
		logger.Error("Error completing session in transaction", "error", err)
		return model.ErrInternalServer
	}

	session.IsCompleted = true
	session.IsWon = won
	session.EndedAt = &now
	return nil
}

// UseHint はヒントを1回消費します。判定とカウンタ更新は同一トランザクションで行い、
// 同一セッションへの並行ヒント要求で上限を超えないようにします。
func (s *gameService) UseHint(ctx context.Context, req *model.HintRequest) (*model.HintResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", req.SessionID.String())

	hintType := req.Type
	if hintType == "" {
		hintType = model.HintRevealPosition
	}

	var resp *model.HintResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByIDForUpdate(ctx, tx, req.SessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
			}
			logger.Error("Error locking session in transaction", "error", err)
			return model.ErrInternalServer
		}
		if session.TargetWord == nil {
			logger.Error("Session has no target word preloaded")
			return model.ErrInternalServer
		}

		if err := puzzle.CanUseHint(session); err != nil {
			if errors.Is(err, model.ErrSessionCompleted) {
				return model.NewAppError("SESSION_COMPLETED", "終了したセッションではヒントを使えません。", "session_id", model.ErrSessionCompleted)
			}
			return model.NewAppError("HINT_QUOTA_EXCEEDED", "このセッションで使えるヒントの上限に達しています。", "", model.ErrHintQuotaExceeded)
		}

		var index int
		var letter string
		switch hintType {
		case model.HintRevealFirstLetter:
			index, letter = puzzle.RevealFirstLetter(session.TargetWord.Text)
		case model.HintRevealPosition:
			index, letter = puzzle.RevealPosition(session.TargetWord.Text)
		default:
			return model.NewAppError("INVALID_HINT_TYPE", "ヒント種別が正しくありません。", "type", model.ErrInvalidInput)
		}

		hintsUsed := session.HintsUsed + 1
		if err := s.sessionRepo.Update(ctx, tx, session.SessionID, map[string]interface{}{
			"hints_used": hintsUsed,
		}); err != nil {
			logger.Error("Error incrementing hints_used in transaction", "error", err)
			return model.ErrInternalServer
		}

		resp = &model.HintResponse{
			Type: hintType,
			Data: model.HintData{
				Index:     index,
				Letter:    letter,
				Remaining: puzzle.HintsRemaining(hintsUsed),
			},
		}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for UseHint", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Hint used", "type", resp.Type, "remaining", resp.Data.Remaining)
	return resp, nil
}

func (s *gameService) GetSessionDetail(ctx context.Context, sessionID uuid.UUID) (*model.SessionDetailResponse, error) {
	logger := middleware.GetLogger(ctx).With("session_id", sessionID.String())

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)
		}
		logger.Error("Error finding session", "error", err)
		return nil, model.ErrInternalServer
	}
	if session.TargetWord == nil {
		logger.Error("Session has no target word preloaded")
		return nil, model.ErrInternalServer
	}

	guesses, err := s.sessionRepo.FindGuesses(ctx, s.db, sessionID)
	if err != nil {
		logger.Error("Error finding guesses", "error", err)
		return nil, model.ErrInternalServer
	}

	history := make([]model.GuessHistoryEntry, 0, len(guesses))
	for _, g := range guesses {
		history = append(history, model.GuessHistoryEntry{
			AttemptNumber: g.AttemptNumber,
			Guess:         g.GuessWord,
			Feedback:      puzzle.Strings(puzzle.FromCompact(g.Result)), // コンパクト表現を展開
			IsCorrect:     g.IsCorrect,
			CreatedAt:     g.CreatedAt,
		})
	}

	breakdown := ComputeScore(session, len(guesses))
	return &model.SessionDetailResponse{
		SessionID:     session.SessionID,
		WordLength:    session.TargetWord.Length,
		MaxAttempts:   session.MaxAttempts,
		AttemptsUsed:  len(guesses),
		Status:        session.Status(),
		Mode:          session.Mode,
		PuzzleType:    session.PuzzleType,
		Difficulty:    session.Difficulty,
		HintsUsed:     session.HintsUsed,
		TimeLimitSecs: session.TimeLimitSecs,
		TotalTimeSecs: session.TotalTimeSecs,
		PlayerName:    session.PlayerName,
		StartedAt:     session.StartedAt,
		EndedAt:       session.EndedAt,
		Guesses:       history,
		Score:         breakdown.Final,
		BaseScore:     breakdown.Base,
		HintPenalty:   breakdown.HintPenalty,
		TimeBonus:     breakdown.TimeBonus,
	}, nil
}

func (s *gameService) GetLeaderboard(ctx context.Context, filter model.LeaderboardFilter) ([]model.LeaderboardEntry, error) {
	logger := middleware.GetLogger(ctx)

	sessions, err := s.sessionRepo.FindCompleted(ctx, s.db, filter)
	if err != nil {
		logger.Error("Error finding completed sessions", "error", err)
		return nil, model.ErrInternalServer
	}

	entries := make([]model.LeaderboardEntry, 0, len(sessions))
	for _, session := range sessions {
		attemptsUsed64, err := s.sessionRepo.CountGuesses(ctx, s.db, session.SessionID)
		if err != nil {
			logger.Error("Error counting guesses for leaderboard", "error", err,
				"session_id", session.SessionID.String())
			return nil, model.ErrInternalServer
		}
		attemptsUsed := int(attemptsUsed64)

		endedAt := time.Now()
		if session.EndedAt != nil {
			endedAt = *session.EndedAt
		}

		entries = append(entries, model.LeaderboardEntry{
			SessionID:    session.SessionID,
			PlayerName:   session.PlayerName,
			Mode:         session.Mode,
			PuzzleType:   session.PuzzleType,
			AttemptsUsed: attemptsUsed,
			MaxAttempts:  session.MaxAttempts,
			Score:        ComputeScore(session, attemptsUsed).Final,
			EndedAt:      endedAt,
		})
	}

	SortLeaderboard(entries)

	if limit := s.cfg.Game.LeaderboardLimit; limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	logger.Info("Leaderboard generated", "count", len(entries))
	return entries, nil
}

// PuzzleTypes は登録済みのパズル種別を返します (GET /puzzle-types 用)
func (s *gameService) PuzzleTypes() []string {
	return s.registry.Types()
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
