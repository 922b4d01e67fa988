// internal/handlers/game_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_wordle_game/internal/handlers"
	"go_5_wordle_game/internal/model"
	"go_5_wordle_game/internal/service/mocks"
)

// --- テストヘルパー ---

func setupRouter(mockService *mocks.GameService) *chi.Mux {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gameHandler := handlers.NewGameHandler(mockService, testLogger)

	router := chi.NewRouter()
	router.Route("/api/v1/game", func(r chi.Router) {
		r.Post("/start-game", gameHandler.StartGame)
		r.Post("/guess", gameHandler.SubmitGuess)
		r.Post("/hint", gameHandler.UseHint)
		r.Get("/session/{session_id}", gameHandler.GetSessionDetail)
		r.Get("/leaderboard", gameHandler.GetLeaderboard)
		r.Get("/modes", gameHandler.GetModes)
		r.Get("/puzzle-types", gameHandler.GetPuzzleTypes)
		r.Get("/diagnostics/validate", gameHandler.DiagnosticsValidate)
	})
	return router
}

func doJSONRequest(t *testing.T, router *chi.Mux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string: // 不正なJSONを送るケース用
			reader = bytes.NewBufferString(b)
		default:
			payload, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewBuffer(payload)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) model.APIErrorResponse {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	return errResp
}

// --- Test StartGame ---

func TestGameHandler_StartGame(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(mockService *mocks.GameService)
		expectedStatus int
		expectedCode   string // エラーレスポンスのコード (エラー時のみ)
	}{
		{
			name: "正常系: ゲーム開始成功",
			body: model.StartGameRequest{WordLength: 5},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("StartGame", mock.Anything, mock.AnythingOfType("*model.StartGameRequest")).
					Return(&model.StartGameResponse{
						SessionID:   sessionID,
						WordLength:  5,
						MaxAttempts: 6,
						Status:      model.StatusInProgress,
						Mode:        model.ModeClassic,
						PuzzleType:  "classic",
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: リクエストボディが不正なJSON",
			body:           `{"word_length": }`,
			setupMock:      func(mockService *mocks.GameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: word_lengthが範囲外",
			body:           model.StartGameRequest{WordLength: 2},
			setupMock:      func(mockService *mocks.GameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: modeが不正",
			body:           model.StartGameRequest{Mode: "speedrun"},
			setupMock:      func(mockService *mocks.GameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 指定した長さの単語がない",
			body: model.StartGameRequest{WordLength: 9},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("StartGame", mock.Anything, mock.AnythingOfType("*model.StartGameRequest")).
					Return(nil, model.NewAppError("NO_WORD_FOR_LENGTH", "長さ9のアクティブな単語がありません。", "word_length", model.ErrNoWordForLength)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "NO_WORD_FOR_LENGTH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.GameService)
			tt.setupMock(mockService)
			router := setupRouter(mockService)

			rr := doJSONRequest(t, router, http.MethodPost, "/api/v1/game/start-game", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr)
				assert.Equal(t, tt.expectedCode, errResp.Error.Code)
			} else {
				var resp model.StartGameResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, sessionID, resp.SessionID)
			}
			mockService.AssertExpectations(t)
		})
	}
}

// --- Test SubmitGuess ---

func TestGameHandler_SubmitGuess(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(mockService *mocks.GameService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 解答成功",
			body: model.GuessRequest{SessionID: sessionID, Guess: "crane"},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("SubmitGuess", mock.Anything, mock.AnythingOfType("*model.GuessRequest")).
					Return(&model.GuessResponse{
						SessionID:     sessionID,
						AttemptNumber: 1,
						Guess:         "crane",
						Feedback:      []string{"correct", "correct", "correct", "correct", "correct"},
						IsCorrect:     true,
						Status:        model.StatusWon,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: guessが空",
			body:           model.GuessRequest{SessionID: sessionID},
			setupMock:      func(mockService *mocks.GameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: セッションが存在しない",
			body: model.GuessRequest{SessionID: sessionID, Guess: "crane"},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("SubmitGuess", mock.Anything, mock.AnythingOfType("*model.GuessRequest")).
					Return(nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SESSION_NOT_FOUND",
		},
		{
			name: "異常系: 試行回数の上限到達は409",
			body: model.GuessRequest{SessionID: sessionID, Guess: "crane"},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("SubmitGuess", mock.Anything, mock.AnythingOfType("*model.GuessRequest")).
					Return(nil, model.NewAppError("ATTEMPTS_EXHAUSTED", "試行回数の上限に達しています。", "", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ATTEMPTS_EXHAUSTED",
		},
		{
			name: "異常系: 辞書に存在しない単語は400",
			body: model.GuessRequest{SessionID: sessionID, Guess: "zzzzz"},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("SubmitGuess", mock.Anything, mock.AnythingOfType("*model.GuessRequest")).
					Return(nil, model.NewAppError("WORD_NOT_IN_DICTIONARY", "辞書に存在しない単語です。", "guess", model.ErrWordNotInDictionary)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "WORD_NOT_IN_DICTIONARY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.GameService)
			tt.setupMock(mockService)
			router := setupRouter(mockService)

			rr := doJSONRequest(t, router, http.MethodPost, "/api/v1/game/guess", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr)
				assert.Equal(t, tt.expectedCode, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

// 409レスポンスのボディに敗北確定後のステータスが載ることを確認する
func TestGameHandler_SubmitGuess_ExhaustedBodyCarriesStatus(t *testing.T) {
	sessionID := uuid.New()

	mockService := new(mocks.GameService)
	appErr := model.NewAppError("ATTEMPTS_EXHAUSTED", "試行回数の上限に達しています。", "", model.ErrConflict)
	appErr.Detail.Status = model.StatusLost
	mockService.On("SubmitGuess", mock.Anything, mock.AnythingOfType("*model.GuessRequest")).
		Return(nil, appErr).Once()
	router := setupRouter(mockService)

	rr := doJSONRequest(t, router, http.MethodPost, "/api/v1/game/guess",
		model.GuessRequest{SessionID: sessionID, Guess: "crane"})

	assert.Equal(t, http.StatusConflict, rr.Code)
	errResp := decodeErrorResponse(t, rr)
	assert.Equal(t, "ATTEMPTS_EXHAUSTED", errResp.Error.Code)
	assert.Equal(t, model.StatusLost, errResp.Error.Status)
	mockService.AssertExpectations(t)
}

// --- Test UseHint ---

func TestGameHandler_UseHint(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(mockService *mocks.GameService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: ヒント取得成功",
			body: model.HintRequest{SessionID: sessionID, Type: model.HintRevealPosition},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("UseHint", mock.Anything, mock.AnythingOfType("*model.HintRequest")).
					Return(&model.HintResponse{
						Type: model.HintRevealPosition,
						Data: model.HintData{Index: 2, Letter: "a", Remaining: 1},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 不明なヒント種別はバリデーションで拒否",
			body:           model.HintRequest{SessionID: sessionID, Type: "reveal_all"},
			setupMock:      func(mockService *mocks.GameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: ヒント上限到達",
			body: model.HintRequest{SessionID: sessionID, Type: model.HintRevealPosition},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("UseHint", mock.Anything, mock.AnythingOfType("*model.HintRequest")).
					Return(nil, model.NewAppError("HINT_QUOTA_EXCEEDED", "このセッションで使えるヒントの上限に達しています。", "", model.ErrHintQuotaExceeded)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "HINT_QUOTA_EXCEEDED",
		},
		{
			name: "異常系: 終了済みセッション",
			body: model.HintRequest{SessionID: sessionID, Type: model.HintRevealPosition},
			setupMock: func(mockService *mocks.GameService) {
				mockService.On("UseHint", mock.Anything, mock.AnythingOfType("*model.HintRequest")).
					Return(nil, model.NewAppError("SESSION_COMPLETED", "終了したセッションではヒントを使えません。", "session_id", model.ErrSessionCompleted)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "SESSION_COMPLETED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.GameService)
			tt.setupMock(mockService)
			router := setupRouter(mockService)

			rr := doJSONRequest(t, router, http.MethodPost, "/api/v1/game/hint", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				errResp := decodeErrorResponse(t, rr)
				assert.Equal(t, tt.expectedCode, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetSessionDetail ---

func TestGameHandler_GetSessionDetail(t *testing.T) {
	sessionID := uuid.New()

	t.Run("正常系: セッション詳細を取得できる", func(t *testing.T) {
		mockService := new(mocks.GameService)
		mockService.On("GetSessionDetail", mock.Anything, sessionID).
			Return(&model.SessionDetailResponse{
				SessionID:   sessionID,
				WordLength:  5,
				MaxAttempts: 6,
				Status:      model.StatusInProgress,
				Guesses:     []model.GuessHistoryEntry{},
			}, nil).Once()
		router := setupRouter(mockService)

		rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/session/"+sessionID.String(), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.SessionDetailResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, sessionID, resp.SessionID)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: session_idがUUIDでない", func(t *testing.T) {
		mockService := new(mocks.GameService)
		router := setupRouter(mockService)

		rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/session/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr)
		assert.Equal(t, "INVALID_URL_PARAM", errResp.Error.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: セッションが存在しない", func(t *testing.T) {
		mockService := new(mocks.GameService)
		mockService.On("GetSessionDetail", mock.Anything, sessionID).
			Return(nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)).Once()
		router := setupRouter(mockService)

		rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/session/"+sessionID.String(), nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}

// --- Test GetLeaderboard ---

func TestGameHandler_GetLeaderboard(t *testing.T) {
	t.Run("正常系: クエリパラメータがフィルタに渡る", func(t *testing.T) {
		mockService := new(mocks.GameService)
		entries := []model.LeaderboardEntry{
			{SessionID: uuid.New(), Mode: model.ModeTimed, Score: 10},
		}
		mockService.On("GetLeaderboard", mock.Anything, model.LeaderboardFilter{Mode: "timed", PuzzleType: "classic"}).
			Return(entries, nil).Once()
		router := setupRouter(mockService)

		rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/leaderboard?mode=timed&puzzle_type=classic", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []model.LeaderboardEntry
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: 結果が空でもJSON配列を返す", func(t *testing.T) {
		mockService := new(mocks.GameService)
		mockService.On("GetLeaderboard", mock.Anything, model.LeaderboardFilter{}).
			Return(nil, nil).Once()
		router := setupRouter(mockService)

		rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/leaderboard", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		mockService.AssertExpectations(t)
	})
}

// --- Test GetModes / GetPuzzleTypes ---

func TestGameHandler_GetModes(t *testing.T) {
	mockService := new(mocks.GameService)
	router := setupRouter(mockService)

	rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/modes", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, model.Modes, resp["modes"])
}

func TestGameHandler_GetPuzzleTypes(t *testing.T) {
	mockService := new(mocks.GameService)
	mockService.On("PuzzleTypes").Return([]string{"anagram", "classic"}).Once()
	router := setupRouter(mockService)

	rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/puzzle-types", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"anagram", "classic"}, resp["puzzle_types"])
	mockService.AssertExpectations(t)
}

// --- Test DiagnosticsValidate ---

func TestGameHandler_DiagnosticsValidate(t *testing.T) {
	mockService := new(mocks.GameService)
	mockService.On("PuzzleTypes").Return([]string{"anagram", "classic"}).Once()
	router := setupRouter(mockService)

	rr := doJSONRequest(t, router, http.MethodGet, "/api/v1/game/diagnostics/validate", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.DiagnosticsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Checks, 2)
	for _, c := range resp.Checks {
		assert.True(t, c.OK, c.Name)
	}
	mockService.AssertExpectations(t)
}
