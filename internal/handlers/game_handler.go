// internal/handlers/game_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_wordle_game/internal/model"
	"go_5_wordle_game/internal/puzzle"
	"go_5_wordle_game/internal/service"
	"go_5_wordle_game/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GameHandler struct {
	service service.GameService
	logger  *slog.Logger
}

func NewGameHandler(s service.GameService, logger *slog.Logger) *GameHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameHandler{
		service: s,
		logger:  logger,
	}
}

// validateStruct はリクエストDTOのバリデーションを行い、最初のエラーをAppErrorに変換します
func validateStruct(req interface{}) *model.AppError {
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			firstErr := validationErrors[0]
			return model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
		}
		// バリデーションライブラリ自体のエラーなど、予期せぬエラー
		return model.NewAppError("VALIDATION_ERROR", "リクエストの検証に失敗しました。", "", model.ErrInvalidInput)
	}
	return nil
}

// StartGame は新しいゲームセッションを開始するハンドラ
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartGame"))

	var req model.StartGameRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.StartGame(r.Context(), &req)
	if err != nil {
		logger.Error("Error starting game in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Game started successfully", slog.String("session_id", resp.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// SubmitGuess は解答を送信するハンドラ
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitGuess"))

	var req model.GuessRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", req.SessionID.String()))

	resp, err := h.service.SubmitGuess(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			logger.Warn("Guess rejected", slog.Any("error", err))
		} else {
			logger.Error("Error submitting guess in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Guess processed successfully",
		slog.Int("attempt_number", resp.AttemptNumber),
		slog.String("status", resp.Status),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// UseHint はヒントを取得するハンドラ
func (h *GameHandler) UseHint(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UseHint"))

	var req model.HintRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := validateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", req.SessionID.String()))

	resp, err := h.service.UseHint(r.Context(), &req)
	if err != nil {
		logger.Warn("Hint rejected", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Hint provided", slog.String("type", resp.Type))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetSessionDetail はセッションの詳細と解答履歴を返すハンドラ
func (h *GameHandler) GetSessionDetail(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSessionDetail"))

	sessionIDStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		logger.Warn("Invalid session ID format in URL", slog.String("session_id_str", sessionIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "session_idの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	resp, err := h.service.GetSessionDetail(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Session not found", slog.Any("error", err))
		} else {
			logger.Error("Error getting session detail from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session detail retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetLeaderboard は完了済みセッションのリーダーボードを返すハンドラ
func (h *GameHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLeaderboard"))

	filter := model.LeaderboardFilter{
		Mode:       r.URL.Query().Get("mode"),
		PuzzleType: r.URL.Query().Get("puzzle_type"),
	}

	entries, err := h.service.GetLeaderboard(r.Context(), filter)
	if err != nil {
		logger.Error("Error getting leaderboard from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	logger.Info("Leaderboard retrieved successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetModes は利用可能なゲームモードの一覧を返すハンドラ
func (h *GameHandler) GetModes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModes"))
	webutil.RespondWithJSON(w, http.StatusOK, map[string][]string{"modes": model.Modes}, logger)
}

// GetPuzzleTypes は登録済みのパズル種別の一覧を返すハンドラ
func (h *GameHandler) GetPuzzleTypes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPuzzleTypes"))
	webutil.RespondWithJSON(w, http.StatusOK, map[string][]string{"puzzle_types": h.service.PuzzleTypes()}, logger)
}

// DiagnosticsValidate はコアロジックの自己診断を行うハンドラです。
// フィードバック計算とコンパクト表現の往復、組み込みエンジンの解決を確認します。
func (h *GameHandler) DiagnosticsValidate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DiagnosticsValidate"))

	checks := []model.DiagnosticsCheck{
		checkFeedbackRoundTrip(),
		checkEngineResolution(h.service),
	}

	ok := true
	for _, c := range checks {
		if !c.OK {
			ok = false
			break
		}
	}

	status := http.StatusOK
	if !ok {
		status = http.StatusInternalServerError
		logger.Error("Diagnostics failed", slog.Any("checks", checks))
	}
	webutil.RespondWithJSON(w, status, model.DiagnosticsResponse{OK: ok, Checks: checks}, logger)
}

func checkFeedbackRoundTrip() model.DiagnosticsCheck {
	check := model.DiagnosticsCheck{Name: "feedback_round_trip"}
	feedback, err := puzzle.ComputeFeedback("abbey", "babes")
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	compact := puzzle.ToCompact(feedback)
	if compact != "yyggb" {
		check.Detail = "unexpected feedback: " + compact
		return check
	}
	expanded := puzzle.FromCompact(compact)
	for i := range feedback {
		if expanded[i] != feedback[i] {
			check.Detail = "round trip mismatch at " + compact
			return check
		}
	}
	check.OK = true
	return check
}

func checkEngineResolution(s service.GameService) model.DiagnosticsCheck {
	check := model.DiagnosticsCheck{Name: "engine_resolution"}
	types := s.PuzzleTypes()
	if len(types) == 0 {
		check.Detail = "no puzzle types registered"
		return check
	}
	check.OK = true
	return check
}
